// Comando backoffice: administración de catálogo, clientes, pedidos y usuarios contra la API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice"
	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice/client"
	"github.com/jhoicas/ecommerce-backoffice/pkg/config"
	"github.com/jhoicas/ecommerce-backoffice/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session estado compartido por los subcomandos, armado en boot.
type session struct {
	cfg      config.BackofficeConfig
	log      *logger.Logger
	client   *client.Client
	notifier backoffice.Notifier
	lookups  backoffice.Lookups
}

var (
	current  *session
	apiURL   string
	apiToken string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "backoffice",
	Short:         "Back-office del e-commerce",
	Long:          "Lista, crea, edita y borra categorías, productos, clientes, pedidos y usuarios; muestra el dashboard.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return boot()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "raíz del servicio (por defecto BACKOFFICE_API_URL)")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "JWT de administrador (por defecto BACKOFFICE_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nivel de log")

	for _, r := range resources {
		rootCmd.AddCommand(r.command())
	}
	rootCmd.AddCommand(dashboardCmd)
}

// boot carga configuración, logger y cliente.
func boot() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bo := cfg.Backoffice
	if apiURL != "" {
		bo.APIURL = apiURL
	}
	if apiToken != "" {
		bo.Token = apiToken
	}
	if bo.Token == "" {
		return fmt.Errorf("falta el token: usar --token o BACKOFFICE_TOKEN")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: logLevel, Output: os.Stderr}).Component("backoffice")
	c := client.New(bo.APIURL, bo.Token, client.WithTimeout(30*time.Second))
	n := backoffice.NewLogNotifier(log.Zerolog())
	current = &session{
		cfg:      bo,
		log:      log,
		client:   c,
		notifier: n,
		lookups: backoffice.Lookups{
			backoffice.LookupCategories: backoffice.NewCategoryLookup(c, n),
			backoffice.LookupCustomers:  backoffice.NewCustomerLookup(c, n),
		},
	}
	return nil
}

func (s *session) viewConfig(size int) backoffice.ViewConfig {
	if size <= 0 {
		size = s.cfg.PageSize
	}
	return backoffice.ViewConfig{PageSize: size, Location: time.Local, Notifier: s.notifier}
}
