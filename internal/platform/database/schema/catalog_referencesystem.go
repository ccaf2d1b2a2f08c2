package schema

// CatalogReferenceSystemTable represents the 'catalog.referencesystem' table
type CatalogReferenceSystemTable struct {
	Table      string
	ID         string
	MetadataID string
	Identifier string
	Code       string
	CreatedAt  string
	UpdatedAt  string
}

// CatalogReferenceSystem is the schema definition for catalog.referencesystem
var CatalogReferenceSystem = CatalogReferenceSystemTable{
	Table:      "catalog.referencesystem",
	ID:         "id",
	MetadataID: "metadataid",
	Identifier: "identifier",
	Code:       "code",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// Columns returns all standard column names
func (t CatalogReferenceSystemTable) Columns() []string {
	return []string{
		t.ID, t.MetadataID, t.Identifier, t.Code, t.CreatedAt, t.UpdatedAt,
	}
}
