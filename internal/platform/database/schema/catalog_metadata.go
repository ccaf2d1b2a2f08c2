package schema

// CatalogMetadataTable represents the 'catalog.metadata' table
type CatalogMetadataTable struct {
	Table            string
	ID               string
	UserID           string
	Status           string
	MetadataLinkage  string
	MetadataStandard string
	Language         string
	CharacterSet     string
	DateStamp        string
	CreatedAt        string
	UpdatedAt        string
}

// CatalogMetadata is the schema definition for catalog.metadata
var CatalogMetadata = CatalogMetadataTable{
	Table:            "catalog.metadata",
	ID:               "id",
	UserID:           "userid",
	Status:           "status",
	MetadataLinkage:  "metadatalinkage",
	MetadataStandard: "metadatastandard",
	Language:         "language",
	CharacterSet:     "characterset",
	DateStamp:        "datestamp",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t CatalogMetadataTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Status, t.MetadataLinkage, t.MetadataStandard,
		t.Language, t.CharacterSet, t.DateStamp, t.CreatedAt, t.UpdatedAt,
	}
}
