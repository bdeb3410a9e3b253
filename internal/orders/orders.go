// Package orders exposes the purchase history operations.
package orders

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tienda/internal/api"
	"tienda/pkg/result"
)

type Order struct {
	ID        int
	Status    string
	Total     float64
	CreatedAt time.Time
	Items     []Item
}

type Item struct {
	ProductID int
	Name      string
	UnitPrice float64
	Quantity  int
}

type orderDTO struct {
	ID        int       `json:"id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt string    `json:"created_at"`
	Items     []itemDTO `json:"items"`
}

type itemDTO struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

func mapOrder(d orderDTO) Order {
	createdAt, err := time.Parse(time.RFC3339, d.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}
	items := make([]Item, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, Item(it))
	}
	return Order{ID: d.ID, Status: d.Status, Total: d.Total, CreatedAt: createdAt, Items: items}
}

func mapOrders(dtos []orderDTO) []Order {
	out := make([]Order, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, mapOrder(d))
	}
	return out
}

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

func (s *Service) List(ctx context.Context) result.Result[[]Order] {
	r := api.Call[[]orderDTO](ctx, s.api, http.MethodGet, "/orders", nil)
	return result.Map(r, mapOrders)
}

func (s *Service) Get(ctx context.Context, id int) result.Result[Order] {
	r := api.Call[orderDTO](ctx, s.api, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil)
	return result.Map(r, mapOrder)
}
