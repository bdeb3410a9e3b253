package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tienda/internal/app"
	"tienda/internal/auth"
)

// NewProductsCmd lists, searches, or shows catalog products.
func NewProductsCmd() *cobra.Command {
	var page int
	var search string

	cmd := &cobra.Command{
		Use:   "products [id]",
		Short: "Explorar el catálogo",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.Flags().IntVar(&page, "page", 1, "página del catálogo")
	cmd.Flags().StringVar(&search, "search", "", "buscar productos")

	cmd.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, args []string) error {
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fail("El identificador del producto debe ser un número.")
			}
			r := a.Catalog.GetProduct(ctx, id)
			if !r.Ok() {
				return fail(r.Message())
			}
			p := r.Value()
			printf(c, "%d  %s  $%.2f\n%s\nExistencias: %d\n", p.ID, p.Name, p.Price, p.Description, p.Stock)
			return nil
		}

		if search != "" {
			r := a.Catalog.SearchProducts(ctx, search)
			if !r.Ok() {
				return fail(r.Message())
			}
			for _, p := range r.Value() {
				printf(c, "%d\t%s\t$%.2f\n", p.ID, p.Name, p.Price)
			}
			return nil
		}

		r := a.Catalog.ListProducts(ctx, page)
		if !r.Ok() {
			return fail(r.Message())
		}
		for _, p := range r.Value() {
			printf(c, "%d\t%s\t$%.2f\n", p.ID, p.Name, p.Price)
		}
		return nil
	})
	return cmd
}

// NewWarehousesCmd lists pickup locations.
func NewWarehousesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warehouses",
		Short: "Listar sucursales",
	}
	cmd.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
		r := a.Catalog.ListWarehouses(ctx)
		if !r.Ok() {
			return fail(r.Message())
		}
		for _, w := range r.Value() {
			printf(c, "%d\t%s\t%s, %s\n", w.ID, w.Name, w.Street, w.City)
		}
		return nil
	})
	return cmd
}
