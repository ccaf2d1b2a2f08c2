package schema

// CatalogTemporalExtentTable represents the 'catalog.temporalextent' table
type CatalogTemporalExtentTable struct {
	Table            string
	ID               string
	IdentificationID string
	StartDate        string
	EndDate          string
	Frequency        string
	CreatedAt        string
	UpdatedAt        string
}

// CatalogTemporalExtent is the schema definition for catalog.temporalextent
var CatalogTemporalExtent = CatalogTemporalExtentTable{
	Table:            "catalog.temporalextent",
	ID:               "id",
	IdentificationID: "identificationid",
	StartDate:        "startdate",
	EndDate:          "enddate",
	Frequency:        "frequency",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t CatalogTemporalExtentTable) Columns() []string {
	return []string{
		t.ID, t.IdentificationID, t.StartDate, t.EndDate, t.Frequency, t.CreatedAt, t.UpdatedAt,
	}
}
