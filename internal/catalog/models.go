package catalog

// Product is the storefront's view of a sellable item. Produced only by
// mapping from wire DTOs; optional wire fields are defaulted here.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Stock       int
	CategoryID  int
}

type Category struct {
	ID   int
	Name string
}

// Warehouse is a pickup location.
type Warehouse struct {
	ID        int
	Name      string
	Street    string
	City      string
	State     string
	Latitude  float64
	Longitude float64
}

// Home aggregates what the storefront landing screen shows.
type Home struct {
	Products   []Product
	Warehouses []Warehouse
}
