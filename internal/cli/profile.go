package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tienda/internal/app"
	"tienda/internal/auth"
	"tienda/internal/profile"
)

// NewProfileCmd shows or updates the account profile.
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Ver el perfil y las direcciones",
		RunE: withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
			r := a.Profile.Snapshot(ctx)
			if !r.Ok() {
				return fail(r.Message())
			}
			snap := r.Value()
			printf(c, "%s %s <%s>\n", snap.User.FirstName, snap.User.LastName, snap.User.Email)
			for _, ad := range snap.Addresses {
				mark := " "
				if ad.Default {
					mark = "*"
				}
				printf(c, "%s %d\t%s %s, %s, %s %s\n", mark, ad.ID, ad.Street, ad.ExteriorNumber, ad.City, ad.State, ad.PostalCode)
			}
			return nil
		}),
	}

	var u profile.User
	set := &cobra.Command{
		Use:   "set",
		Short: "Actualizar nombre y teléfono",
	}
	set.Flags().StringVar(&u.FirstName, "first-name", "", "nombre")
	set.Flags().StringVar(&u.LastName, "last-name", "", "apellido")
	set.Flags().StringVar(&u.Phone, "phone", "", "teléfono")
	set.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
		r := a.Profile.Update(ctx, u)
		if !r.Ok() {
			return fail(r.Message())
		}
		printf(c, "Perfil actualizado.\n")
		return nil
	})
	cmd.AddCommand(set)

	return cmd
}

// NewAddressesCmd manages shipping addresses.
func NewAddressesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addresses",
		Short: "Administrar direcciones de envío",
		RunE: withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
			r := a.Profile.ListAddresses(ctx)
			if !r.Ok() {
				return fail(r.Message())
			}
			for _, ad := range r.Value() {
				printf(c, "%d\t%s %s, %s, %s %s\n", ad.ID, ad.Street, ad.ExteriorNumber, ad.City, ad.State, ad.PostalCode)
			}
			return nil
		}),
	}

	var in profile.Address
	add := &cobra.Command{
		Use:   "add",
		Short: "Agregar una dirección",
	}
	add.Flags().StringVar(&in.Street, "street", "", "calle")
	add.Flags().StringVar(&in.ExteriorNumber, "number", "", "número exterior")
	add.Flags().StringVar(&in.Neighborhood, "neighborhood", "", "colonia")
	add.Flags().StringVar(&in.City, "city", "", "ciudad")
	add.Flags().StringVar(&in.State, "state", "", "estado")
	add.Flags().StringVar(&in.PostalCode, "postal-code", "", "código postal")
	add.Flags().BoolVar(&in.Default, "default", false, "usar como predeterminada")
	add.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
		r := a.Profile.CreateAddress(ctx, in)
		if !r.Ok() {
			return fail(r.Message())
		}
		printf(c, "Dirección %d guardada.\n", r.Value().ID)
		return nil
	})

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Eliminar una dirección",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fail("El identificador de la dirección debe ser un número.")
			}
			if r := a.Profile.DeleteAddress(ctx, id); !r.Ok() {
				return fail(r.Message())
			}
			printf(c, "Dirección eliminada.\n")
			return nil
		}),
	}

	cmd.AddCommand(add, remove)
	return cmd
}

// NewFiscalCmd shows or saves invoicing data.
func NewFiscalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fiscal",
		Short: "Ver los datos fiscales",
		RunE: withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
			r := a.Profile.FiscalData(ctx)
			if !r.Ok() {
				return fail(r.Message())
			}
			f := r.Value()
			printf(c, "RFC: %s\nRazón social: %s\nRégimen: %s\nCP: %s\n", f.RFC, f.BusinessName, f.FiscalRegime, f.PostalCode)
			return nil
		}),
	}

	var f profile.FiscalData
	set := &cobra.Command{
		Use:   "set",
		Short: "Guardar los datos fiscales",
	}
	set.Flags().StringVar(&f.RFC, "rfc", "", "RFC")
	set.Flags().StringVar(&f.BusinessName, "business-name", "", "razón social")
	set.Flags().StringVar(&f.FiscalRegime, "regime", "", "régimen fiscal")
	set.Flags().StringVar(&f.PostalCode, "postal-code", "", "código postal")
	set.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
		r := a.Profile.SaveFiscalData(ctx, f)
		if !r.Ok() {
			return fail(r.Message())
		}
		printf(c, "Datos fiscales guardados.\n")
		return nil
	})
	cmd.AddCommand(set)

	return cmd
}
