// Package cart exposes the shopping cart operations. The backend keeps one
// current cart per session; every mutation returns the updated cart so the
// UI re-renders from the response, never from local bookkeeping.
package cart

import (
	"context"
	"fmt"
	"net/http"

	"tienda/internal/api"
	"tienda/pkg/result"
)

type Cart struct {
	ID       int
	Items    []Item
	Subtotal float64
}

type Item struct {
	ProductID int
	Name      string
	UnitPrice float64
	Quantity  int
}

type cartDTO struct {
	ID       int       `json:"id"`
	Items    []itemDTO `json:"items"`
	Subtotal float64   `json:"subtotal"`
}

type itemDTO struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

func mapCart(d cartDTO) Cart {
	items := make([]Item, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, Item(it))
	}
	return Cart{ID: d.ID, Items: items, Subtotal: d.Subtotal}
}

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

func (s *Service) Get(ctx context.Context) result.Result[Cart] {
	r := api.Call[cartDTO](ctx, s.api, http.MethodGet, "/carts/current", nil)
	return result.Map(r, mapCart)
}

func (s *Service) AddItem(ctx context.Context, productID, quantity int) result.Result[Cart] {
	body := map[string]int{"product_id": productID, "quantity": quantity}
	r := api.Call[cartDTO](ctx, s.api, http.MethodPost, "/carts/current/items", body)
	return result.Map(r, mapCart)
}

func (s *Service) UpdateItemQuantity(ctx context.Context, productID, quantity int) result.Result[Cart] {
	body := map[string]int{"quantity": quantity}
	path := fmt.Sprintf("/carts/current/items/%d", productID)
	r := api.Call[cartDTO](ctx, s.api, http.MethodPut, path, body)
	return result.Map(r, mapCart)
}

func (s *Service) RemoveItem(ctx context.Context, productID int) result.Result[Cart] {
	path := fmt.Sprintf("/carts/current/items/%d", productID)
	r := api.Call[cartDTO](ctx, s.api, http.MethodDelete, path, nil)
	return result.Map(r, mapCart)
}

// Clear empties the cart. The backend answers 204.
func (s *Service) Clear(ctx context.Context) result.Result[api.Empty] {
	return api.CallEmpty(ctx, s.api, http.MethodDelete, "/carts/current", nil)
}
