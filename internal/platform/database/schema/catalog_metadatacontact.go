package schema

// CatalogMetadataContactTable represents the 'catalog.metadatacontact' table
type CatalogMetadataContactTable struct {
	Table        string
	ID           string
	MetadataID   string
	Name         string
	Organization string
	Email        string
	Phone        string
	Address      string
	Role         string
	Weblink      string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogMetadataContact is the schema definition for catalog.metadatacontact
var CatalogMetadataContact = CatalogMetadataContactTable{
	Table:        "catalog.metadatacontact",
	ID:           "id",
	MetadataID:   "metadataid",
	Name:         "name",
	Organization: "organization",
	Email:        "email",
	Phone:        "phone",
	Address:      "address",
	Role:         "role",
	Weblink:      "weblink",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t CatalogMetadataContactTable) Columns() []string {
	return []string{
		t.ID, t.MetadataID, t.Name, t.Organization, t.Email, t.Phone,
		t.Address, t.Role, t.Weblink, t.CreatedAt, t.UpdatedAt,
	}
}
