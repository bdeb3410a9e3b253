package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tienda/internal/cli"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Msg)
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tienda",
	Short: "Cliente de la tienda en línea",
	Long:  "tienda: cliente de línea de comandos para el catálogo, carrito, compras y perfil.",
	// SilenceUsage prevents printing usage on every error
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "ruta del archivo de configuración YAML")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("tienda version %s\n", version))

	rootCmd.AddCommand(cli.NewLoginCmd())
	rootCmd.AddCommand(cli.NewRegisterCmd())
	rootCmd.AddCommand(cli.NewLogoutCmd())
	rootCmd.AddCommand(cli.NewWhoamiCmd())
	rootCmd.AddCommand(cli.NewProductsCmd())
	rootCmd.AddCommand(cli.NewWarehousesCmd())
	rootCmd.AddCommand(cli.NewCartCmd())
	rootCmd.AddCommand(cli.NewCheckoutCmd())
	rootCmd.AddCommand(cli.NewOrdersCmd())
	rootCmd.AddCommand(cli.NewProfileCmd())
	rootCmd.AddCommand(cli.NewAddressesCmd())
	rootCmd.AddCommand(cli.NewFiscalCmd())
}
