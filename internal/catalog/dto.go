package catalog

// Wire DTOs mirror the backend's snake_case payloads. Mapping to domain
// entities is pure and total; nullable fields default to zero values.

type productDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
	Stock       *int    `json:"stock"`
	CategoryID  *int    `json:"category_id"`
}

type categoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type warehouseDTO struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func mapProduct(d productDTO) Product {
	return Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: strOr(d.Description),
		Price:       d.Price,
		ImageURL:    strOr(d.ImageURL),
		Stock:       intOr(d.Stock),
		CategoryID:  intOr(d.CategoryID),
	}
}

func mapProducts(dtos []productDTO) []Product {
	out := make([]Product, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, mapProduct(d))
	}
	return out
}

func mapCategory(d categoryDTO) Category {
	return Category{ID: d.ID, Name: d.Name}
}

func mapWarehouse(d warehouseDTO) Warehouse {
	return Warehouse{
		ID:        d.ID,
		Name:      d.Name,
		Street:    strOr(d.Street),
		City:      strOr(d.City),
		State:     strOr(d.State),
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
	}
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOr(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
