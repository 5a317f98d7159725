package commands

import (
	"fmt"
	"time"

	"github.com/Leerling-hub/Booking/config"
	"github.com/Leerling-hub/Booking/utils"
	"github.com/spf13/cobra"
)

// defaultCLITokenTTL is the lifetime of tokens minted from the command line
const defaultCLITokenTTL = 8 * 24 * time.Hour

func SecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secret",
		Short: "Generate a random JWT secret (32 bytes, hex encoded)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := utils.GenerateSecretKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
}

func TokenCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token <username>",
		Short: "Issue a signed token for username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, _ := cmd.Flags().GetDuration("ttl")
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive, got %s", ttl)
			}

			token, err := utils.NewTokenService(cfg.JWTSecret, ttl).Issue(args[0])
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().Duration("ttl", defaultCLITokenTTL, "Token lifetime")

	return cmd
}

func HashCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <password>",
		Short: "Print the bcrypt hash of password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := utils.NewPasswordHasher(cfg.BcryptCost).HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func VerifyPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-password <hash> <password>",
		Short: "Check whether password matches a bcrypt hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// the cost is read from the hash itself
			match := utils.NewPasswordHasher(0).CheckPasswordHash(args[1], args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Password match: %t\n", match)
			return nil
		},
	}
}
