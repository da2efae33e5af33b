// internal/cli/serve.go
//
// `serve`: runs the HTTP solver API until the command context is cancelled.

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

func serveCmd(a *app) *cobra.Command {
	var port string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP solver API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}
			a.jsonLogs = true
			a.setupLogging(cmd.ErrOrStderr())

			if err := a.cfg.Validate(); err != nil {
				return err
			}
			lx, err := a.lexicon()
			if err != nil {
				return err
			}
			h, err := a.history()
			if err != nil {
				return err
			}
			defer h.Close()

			srv := httpserver.New(httpserver.Options{
				Lexicon:   lx,
				Store:     store.NewMemoryStore(),
				History:   h,
				Session:   a.cfg.Session(),
				JWTSecret: a.cfg.JWTSecret,
			})
			if a.cfg.JWTSecret == "" {
				log.Warn().Msg("JWT_SECRET not set; API is unauthenticated")
			}
			log.Info().Str("port", a.cfg.Port).Str("db", a.cfg.DBPath).Msg("starting wordle-solver")
			return srv.Start(":" + a.cfg.Port)
		},
	}
	c.Flags().StringVar(&port, "port", "", "listen port (default 5175)")
	return c
}
