package cli

import (
	"bufio"
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tienda/internal/app"
	"tienda/internal/auth"
	"tienda/internal/profile"
	"tienda/pkg/email"
)

// greeting prefers the profile name, falling back to one derived from the
// email for accounts that never filled theirs in.
func greeting(u profile.User) string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return email.DisplayName(u.Email)
}

// NewLoginCmd signs in with email/password, or with a federated ID token
// when --federated-token is given.
func NewLoginCmd() *cobra.Command {
	var email, password, federatedToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión",
	}
	cmd.Flags().StringVar(&email, "email", "", "correo electrónico")
	cmd.Flags().StringVar(&password, "password", "", "contraseña (se pregunta si se omite)")
	cmd.Flags().StringVar(&federatedToken, "federated-token", "", "ID token del proveedor de identidad")

	cmd.RunE = func(c *cobra.Command, args []string) error {
		broker := auth.StaticBroker{Token: federatedToken}
		return withApp(broker, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
			if federatedToken != "" {
				r := a.Auth.FederatedSignIn(ctx)
				if !r.Ok() {
					return fail(r.Message())
				}
				printf(c, "Hola, %s\n", greeting(r.Value()))
				return nil
			}

			if password == "" {
				printf(c, "Contraseña: ")
				line, err := bufio.NewReader(c.InOrStdin()).ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimRight(line, "\r\n")
			}

			r := a.Auth.Login(ctx, email, password)
			if !r.Ok() {
				return fail(r.Message())
			}
			printf(c, "Hola, %s\n", greeting(r.Value()))
			return nil
		})(c, args)
	}
	return cmd
}

// NewRegisterCmd creates an account and signs in.
func NewRegisterCmd() *cobra.Command {
	var in auth.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Crear una cuenta",
	}
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "nombre")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "apellido")
	cmd.Flags().StringVar(&in.Email, "email", "", "correo electrónico")
	cmd.Flags().StringVar(&in.Password, "password", "", "contraseña")

	cmd.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
		r := a.Auth.Register(ctx, in)
		if !r.Ok() {
			return fail(r.Message())
		}
		printf(c, "Cuenta creada. Hola, %s\n", greeting(r.Value()))
		return nil
	})
	return cmd
}

// NewLogoutCmd clears local credentials and session state.
func NewLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
	}
	cmd.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
		a.Auth.Logout()
		printf(c, "Sesión cerrada.\n")
		return nil
	})
	return cmd
}

// NewWhoamiCmd prints the current session record, read through the store's
// observable cell.
func NewWhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar la sesión actual",
	}
	cmd.RunE = withApp(auth.StaticBroker{}, func(ctx context.Context, a *app.App, c *cobra.Command, _ []string) error {
		ch, cancel := a.Sessions.Subscribe()
		defer cancel()

		rec := <-ch
		if !rec.Authenticated {
			printf(c, "No has iniciado sesión.\n")
			return nil
		}
		printf(c, "%s (usuario %d)\n", rec.UserEmail, rec.UserID)
		return nil
	})
	return cmd
}
