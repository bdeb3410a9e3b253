// Package profile exposes account, address, and fiscal data operations.
package profile

import (
	"context"
	"fmt"
	"net/http"

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

// Get fetches the current account. Auth flows also use this as the
// session-confirmation round-trip after a successful credential exchange.
func (s *Service) Get(ctx context.Context) result.Result[User] {
	r := api.Call[userDTO](ctx, s.api, http.MethodGet, "/users/me", nil)
	return result.Map(r, mapUser)
}

func (s *Service) Update(ctx context.Context, u User) result.Result[User] {
	body := map[string]any{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"phone":      u.Phone,
	}
	r := api.Call[userDTO](ctx, s.api, http.MethodPut, "/users/me", body)
	return result.Map(r, mapUser)
}

func (s *Service) ListAddresses(ctx context.Context) result.Result[[]Address] {
	r := api.Call[[]addressDTO](ctx, s.api, http.MethodGet, "/addresses", nil)
	return result.Map(r, mapAddresses)
}

func (s *Service) CreateAddress(ctx context.Context, a Address) result.Result[Address] {
	r := api.Call[addressDTO](ctx, s.api, http.MethodPost, "/addresses", addressBody(a))
	return result.Map(r, mapAddress)
}

func (s *Service) UpdateAddress(ctx context.Context, a Address) result.Result[Address] {
	path := fmt.Sprintf("/addresses/%d", a.ID)
	r := api.Call[addressDTO](ctx, s.api, http.MethodPut, path, addressBody(a))
	return result.Map(r, mapAddress)
}

func (s *Service) DeleteAddress(ctx context.Context, id int) result.Result[api.Empty] {
	return api.CallEmpty(ctx, s.api, http.MethodDelete, fmt.Sprintf("/addresses/%d", id), nil)
}

func (s *Service) FiscalData(ctx context.Context) result.Result[FiscalData] {
	r := api.Call[fiscalDataDTO](ctx, s.api, http.MethodGet, "/users/me/fiscal-data", nil)
	return result.Map(r, mapFiscalData)
}

func (s *Service) SaveFiscalData(ctx context.Context, f FiscalData) result.Result[FiscalData] {
	body := map[string]string{
		"rfc":           f.RFC,
		"business_name": f.BusinessName,
		"fiscal_regime": f.FiscalRegime,
		"postal_code":   f.PostalCode,
	}
	r := api.Call[fiscalDataDTO](ctx, s.api, http.MethodPut, "/users/me/fiscal-data", body)
	return result.Map(r, mapFiscalData)
}

// Snapshot fetches the account and its addresses in parallel for the
// profile screen.
func (s *Service) Snapshot(ctx context.Context) result.Result[Snapshot] {
	var (
		user      result.Result[User]
		addresses result.Result[[]Address]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user = s.Get(gctx)
		return user.Err()
	})
	g.Go(func() error {
		addresses = s.ListAddresses(gctx)
		return addresses.Err()
	})
	_ = g.Wait()

	if !user.Ok() {
		return result.Forward[User, Snapshot](user)
	}
	if !addresses.Ok() {
		return result.Forward[[]Address, Snapshot](addresses)
	}
	return result.Ok(Snapshot{User: user.Value(), Addresses: addresses.Value()})
}

func addressBody(a Address) map[string]any {
	return map[string]any{
		"street":          a.Street,
		"exterior_number": a.ExteriorNumber,
		"neighborhood":    a.Neighborhood,
		"city":            a.City,
		"state":           a.State,
		"postal_code":     a.PostalCode,
		"is_default":      a.Default,
	}
}
