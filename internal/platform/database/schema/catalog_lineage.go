package schema

// CatalogLineageTable represents the 'catalog.lineage' table
type CatalogLineageTable struct {
	Table           string
	ID              string
	MetadataID      string
	Statement       string
	HierarchyLevel  string
	ProcessSoftware string
	ProcessDate     string
	CreatedAt       string
	UpdatedAt       string
}

// CatalogLineage is the schema definition for catalog.lineage
var CatalogLineage = CatalogLineageTable{
	Table:           "catalog.lineage",
	ID:              "id",
	MetadataID:      "metadataid",
	Statement:       "statement",
	HierarchyLevel:  "hierarchylevel",
	ProcessSoftware: "processsoftware",
	ProcessDate:     "processdate",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t CatalogLineageTable) Columns() []string {
	return []string{
		t.ID, t.MetadataID, t.Statement, t.HierarchyLevel, t.ProcessSoftware,
		t.ProcessDate, t.CreatedAt, t.UpdatedAt,
	}
}
