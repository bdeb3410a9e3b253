package cli

import (
	"context"

	"github.com/spf13/cobra"

	"tienda/internal/app"
	"tienda/internal/auth"
	"tienda/internal/checkout"
)

// NewCheckoutCmd submits the current cart as an order.
func NewCheckoutCmd() *cobra.Command {
	var req checkout.Request

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Pagar el carrito",
	}
	cmd.Flags().IntVar(&req.AddressID, "address", 0, "id de la dirección de envío")
	cmd.Flags().IntVar(&req.WarehouseID, "warehouse", 0, "id de la sucursal para recoger")
	cmd.Flags().StringVar(&req.PaymentMethodID, "payment", "", "id del método de pago")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notas para la entrega")

	methods := &cobra.Command{
		Use:   "methods",
		Short: "Listar métodos de pago",
		RunE: withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
			r := a.Checkout.PaymentMethods(ctx)
			if !r.Ok() {
				return fail(r.Message())
			}
			for _, m := range r.Value() {
				printf(c, "%s\t%s\n", m.ID, m.Label)
			}
			return nil
		}),
	}
	cmd.AddCommand(methods)

	cmd.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
		r := a.Checkout.Submit(ctx, req)
		if !r.Ok() {
			return fail(r.Message())
		}
		conf := r.Value()
		printf(c, "Orden %d confirmada. Total: $%.2f\n", conf.OrderID, conf.Total)
		return nil
	})
	return cmd
}
