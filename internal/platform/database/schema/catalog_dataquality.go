package schema

// CatalogDataQualityTable represents the 'catalog.dataquality' table
type CatalogDataQualityTable struct {
	Table              string
	ID                 string
	MetadataID         string
	CompletenessReport string
	AccuracyReport     string
	ProcessDescription string
	ProcessDate        string
	CreatedAt          string
	UpdatedAt          string
}

// CatalogDataQuality is the schema definition for catalog.dataquality
var CatalogDataQuality = CatalogDataQualityTable{
	Table:              "catalog.dataquality",
	ID:                 "id",
	MetadataID:         "metadataid",
	CompletenessReport: "completenessreport",
	AccuracyReport:     "accuracyreport",
	ProcessDescription: "processdescription",
	ProcessDate:        "processdate",
	CreatedAt:          "createdat",
	UpdatedAt:          "updatedat",
}

// Columns returns all standard column names
func (t CatalogDataQualityTable) Columns() []string {
	return []string{
		t.ID, t.MetadataID, t.CompletenessReport, t.AccuracyReport,
		t.ProcessDescription, t.ProcessDate, t.CreatedAt, t.UpdatedAt,
	}
}
