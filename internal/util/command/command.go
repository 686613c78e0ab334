package command

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/config"
)

// NewSubcommandGroup returns a cobra command that requires one of its
// subcommands to be invoked.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Subcommand group",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Error().Err(err).Msg("Failed to print help")
			}
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// ServerFn runs with a fully initialized server, used by one-off CLI commands.
type ServerFn func(ctx context.Context, s *api.Server) error

// WithServer initializes a server (without starting to listen), runs the given
// function and shuts the server down again.
func WithServer(ctx context.Context, cfg config.Server, fn ServerFn) error {
	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	defer func() {
		if errs := s.Shutdown(ctx); len(errs) > 0 {
			log.Error().Errs("errs", errs).Msg("Errors while shutting down server")
		}
	}()

	return fn(ctx, s)
}
