package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/pkg/config"
	"github.com/jhoicas/ecommerce-backoffice/pkg/jwt"
)

var (
	tokenUser string
	tokenRole string
)

// backoffice token --user ana [--role admin]
// Firma con JWT_SECRET; no necesita la API ni BACKOFFICE_TOKEN.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emitir un JWT de operador firmado con JWT_SECRET",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		token, err := jwt.Generate(cfg.JWT.Secret, tokenUser, tokenRole, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "admin", "username del operador")
	tokenCmd.Flags().StringVar(&tokenRole, "role", entity.RoleAdmin, "rol del token")
	rootCmd.AddCommand(tokenCmd)
}
