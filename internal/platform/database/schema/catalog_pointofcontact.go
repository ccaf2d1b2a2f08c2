package schema

// CatalogPointOfContactTable represents the 'catalog.pointofcontact' table
type CatalogPointOfContactTable struct {
	Table            string
	ID               string
	IdentificationID string
	Name             string
	Organization     string
	Email            string
	Phone            string
	Address          string
	Role             string
	CreatedAt        string
	UpdatedAt        string
}

// CatalogPointOfContact is the schema definition for catalog.pointofcontact
var CatalogPointOfContact = CatalogPointOfContactTable{
	Table:            "catalog.pointofcontact",
	ID:               "id",
	IdentificationID: "identificationid",
	Name:             "name",
	Organization:     "organization",
	Email:            "email",
	Phone:            "phone",
	Address:          "address",
	Role:             "role",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t CatalogPointOfContactTable) Columns() []string {
	return []string{
		t.ID, t.IdentificationID, t.Name, t.Organization, t.Email, t.Phone,
		t.Address, t.Role, t.CreatedAt, t.UpdatedAt,
	}
}
