package schema

// CatalogDistributionTable represents the 'catalog.distribution' table
type CatalogDistributionTable struct {
	Table            string
	ID               string
	MetadataID       string
	Name             string
	Address          string
	PhoneNo          string
	Weblink          string
	Format           string
	DistributorEmail string
	OrderProcess     string
	CreatedAt        string
	UpdatedAt        string
}

// CatalogDistribution is the schema definition for catalog.distribution
var CatalogDistribution = CatalogDistributionTable{
	Table:            "catalog.distribution",
	ID:               "id",
	MetadataID:       "metadataid",
	Name:             "name",
	Address:          "address",
	PhoneNo:          "phoneno",
	Weblink:          "weblink",
	Format:           "format",
	DistributorEmail: "distributoremail",
	OrderProcess:     "orderprocess",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t CatalogDistributionTable) Columns() []string {
	return []string{
		t.ID, t.MetadataID, t.Name, t.Address, t.PhoneNo, t.Weblink,
		t.Format, t.DistributorEmail, t.OrderProcess, t.CreatedAt, t.UpdatedAt,
	}
}
