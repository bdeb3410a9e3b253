package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tienda/internal/app"
	"tienda/internal/auth"
)

// NewOrdersCmd lists the purchase history or shows one order.
func NewOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders [id]",
		Short: "Historial de compras",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, args []string) error {
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fail("El identificador de la orden debe ser un número.")
			}
			r := a.Orders.Get(ctx, id)
			if !r.Ok() {
				return fail(r.Message())
			}
			o := r.Value()
			printf(c, "Orden %d (%s) $%.2f %s\n", o.ID, o.Status, o.Total, o.CreatedAt.Format(time.DateOnly))
			for _, it := range o.Items {
				printf(c, "  %s x%d $%.2f\n", it.Name, it.Quantity, it.UnitPrice)
			}
			return nil
		}

		r := a.Orders.List(ctx)
		if !r.Ok() {
			return fail(r.Message())
		}
		for _, o := range r.Value() {
			printf(c, "%d\t%s\t$%.2f\t%s\n", o.ID, o.Status, o.Total, o.CreatedAt.Format(time.DateOnly))
		}
		return nil
	})
	return cmd
}
