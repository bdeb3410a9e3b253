package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tienda/internal/app"
	"tienda/internal/auth"
	"tienda/internal/cart"
)

// NewCartCmd shows and mutates the current cart.
func NewCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Administrar el carrito",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Mostrar el carrito",
		RunE: withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
			r := a.Cart.Get(ctx)
			if !r.Ok() {
				return fail(r.Message())
			}
			printCart(c, r.Value())
			return nil
		}),
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Agregar un producto",
		Args:  cobra.ExactArgs(1),
	}
	add.Flags().IntVar(&qty, "qty", 1, "cantidad")
	add.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fail("El identificador del producto debe ser un número.")
		}
		r := a.Cart.AddItem(ctx, id, qty)
		if !r.Ok() {
			return fail(r.Message())
		}
		printCart(c, r.Value())
		return nil
	})

	var setQty int
	set := &cobra.Command{
		Use:   "set <product-id>",
		Short: "Cambiar la cantidad de un producto",
		Args:  cobra.ExactArgs(1),
	}
	set.Flags().IntVar(&setQty, "qty", 1, "cantidad")
	set.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fail("El identificador del producto debe ser un número.")
		}
		r := a.Cart.UpdateItemQuantity(ctx, id, setQty)
		if !r.Ok() {
			return fail(r.Message())
		}
		printCart(c, r.Value())
		return nil
	})

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Quitar un producto",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fail("El identificador del producto debe ser un número.")
			}
			r := a.Cart.RemoveItem(ctx, id)
			if !r.Ok() {
				return fail(r.Message())
			}
			printCart(c, r.Value())
			return nil
		}),
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Vaciar el carrito",
		RunE: withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
			if r := a.Cart.Clear(ctx); !r.Ok() {
				return fail(r.Message())
			}
			printf(c, "Carrito vacío.\n")
			return nil
		}),
	}

	cmd.AddCommand(show, add, set, remove, clear)
	return cmd
}

func printCart(c *cobra.Command, ct cart.Cart) {
	for _, it := range ct.Items {
		printf(c, "%d\t%s\tx%d\t$%.2f\n", it.ProductID, it.Name, it.Quantity, it.UnitPrice)
	}
	printf(c, "Subtotal: $%.2f\n", ct.Subtotal)
}
