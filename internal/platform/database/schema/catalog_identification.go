package schema

// CatalogIdentificationTable represents the 'catalog.identification' table
type CatalogIdentificationTable struct {
	Table           string
	ID              string
	MetadataID      string
	Title           string
	ProductionDate  string
	EditionDate     string
	Abstract        string
	SpatialRepType  string
	EquivalentScale string
	BoundingBox     string
	UpdateFrequency string
	Keywords        string
	KeywordType     string
	TopicCategory   string
	CreatedAt       string
	UpdatedAt       string
}

// CatalogIdentification is the schema definition for catalog.identification
var CatalogIdentification = CatalogIdentificationTable{
	Table:           "catalog.identification",
	ID:              "id",
	MetadataID:      "metadataid",
	Title:           "title",
	ProductionDate:  "productiondate",
	EditionDate:     "editiondate",
	Abstract:        "abstract",
	SpatialRepType:  "spatialreptype",
	EquivalentScale: "equivalentscale",
	BoundingBox:     "boundingbox",
	UpdateFrequency: "updatefrequency",
	Keywords:        "keywords",
	KeywordType:     "keywordtype",
	TopicCategory:   "topiccategory",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t CatalogIdentificationTable) Columns() []string {
	return []string{
		t.ID, t.MetadataID, t.Title, t.ProductionDate, t.EditionDate, t.Abstract,
		t.SpatialRepType, t.EquivalentScale, t.BoundingBox, t.UpdateFrequency,
		t.Keywords, t.KeywordType, t.TopicCategory, t.CreatedAt, t.UpdatedAt,
	}
}
