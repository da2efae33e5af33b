// internal/cli/token.go
//
// `token`: mints an HS256 bearer token for the HTTP API.

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
)

func tokenCmd(a *app) *cobra.Command {
	var subject string
	var ttl time.Duration

	c := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the HTTP API (needs JWT_SECRET)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, exp, err := httpserver.SignToken(a.cfg.JWTSecret, subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.UTC().Format(time.RFC3339))
			return nil
		},
	}
	c.Flags().StringVar(&subject, "subject", "cli", "token subject")
	c.Flags().DurationVar(&ttl, "ttl", 14*24*time.Hour, "token lifetime")
	return c
}
