// Package catalog exposes the product and warehouse browsing operations.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"tienda/internal/api"
	"tienda/pkg/result"
)

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// ListProducts fetches one page of the catalog. Pages start at 1.
func (s *Service) ListProducts(ctx context.Context, page int) result.Result[[]Product] {
	if page < 1 {
		page = 1
	}
	r := api.Call[[]productDTO](ctx, s.api, http.MethodGet, fmt.Sprintf("/products?page=%d", page), nil)
	return result.Map(r, mapProducts)
}

func (s *Service) GetProduct(ctx context.Context, id int) result.Result[Product] {
	r := api.Call[productDTO](ctx, s.api, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	return result.Map(r, mapProduct)
}

func (s *Service) SearchProducts(ctx context.Context, query string) result.Result[[]Product] {
	path := "/products/search?q=" + url.QueryEscape(query)
	r := api.Call[[]productDTO](ctx, s.api, http.MethodGet, path, nil)
	return result.Map(r, mapProducts)
}

func (s *Service) ListCategories(ctx context.Context) result.Result[[]Category] {
	r := api.Call[[]categoryDTO](ctx, s.api, http.MethodGet, "/products/categories", nil)
	return result.Map(r, func(dtos []categoryDTO) []Category {
		out := make([]Category, 0, len(dtos))
		for _, d := range dtos {
			out = append(out, mapCategory(d))
		}
		return out
	})
}

func (s *Service) ListWarehouses(ctx context.Context) result.Result[[]Warehouse] {
	r := api.Call[[]warehouseDTO](ctx, s.api, http.MethodGet, "/warehouses", nil)
	return result.Map(r, func(dtos []warehouseDTO) []Warehouse {
		out := make([]Warehouse, 0, len(dtos))
		for _, d := range dtos {
			out = append(out, mapWarehouse(d))
		}
		return out
	})
}

// Home fetches the landing screen's data in parallel. The first failing
// fetch cancels the other and its message is reported for the whole screen.
func (s *Service) Home(ctx context.Context) result.Result[Home] {
	var (
		products   result.Result[[]Product]
		warehouses result.Result[[]Warehouse]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products = s.ListProducts(gctx, 1)
		return products.Err()
	})
	g.Go(func() error {
		warehouses = s.ListWarehouses(gctx)
		return warehouses.Err()
	})
	_ = g.Wait()

	if !products.Ok() {
		return result.Forward[[]Product, Home](products)
	}
	if !warehouses.Ok() {
		return result.Forward[[]Warehouse, Home](warehouses)
	}
	return result.Ok(Home{Products: products.Value(), Warehouses: warehouses.Value()})
}
