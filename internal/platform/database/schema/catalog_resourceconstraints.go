package schema

// CatalogResourceConstraintsTable represents the 'catalog.resourceconstraints' table
type CatalogResourceConstraintsTable struct {
	Table             string
	ID                string
	IdentificationID  string
	AccessConstraints string
	UseConstraints    string
	OtherConstraints  string
	CreatedAt         string
	UpdatedAt         string
}

// CatalogResourceConstraints is the schema definition for catalog.resourceconstraints
var CatalogResourceConstraints = CatalogResourceConstraintsTable{
	Table:             "catalog.resourceconstraints",
	ID:                "id",
	IdentificationID:  "identificationid",
	AccessConstraints: "accessconstraints",
	UseConstraints:    "useconstraints",
	OtherConstraints:  "otherconstraints",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}

// Columns returns all standard column names
func (t CatalogResourceConstraintsTable) Columns() []string {
	return []string{
		t.ID, t.IdentificationID, t.AccessConstraints, t.UseConstraints,
		t.OtherConstraints, t.CreatedAt, t.UpdatedAt,
	}
}
