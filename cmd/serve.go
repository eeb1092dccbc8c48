package cmd

import (
	"os"

	"github.com/olivier-w/folio/internal/observability"
	"github.com/olivier-w/folio/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := observability.NewLogger(a.cfg.Logger, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			addr := serveAddr(cmd.Flags().Changed("addr"), a.cfg.Server.Addr, os.Getenv("PORT"))
			s, err := server.New(a.cfg, log)
			if err != nil {
				return err
			}
			log.Info("starting server", zap.String("version", Version), zap.String("addr", addr))
			return s.Run(cmd.Context(), addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	bindFlags(a.v, cmd.Flags())
	return cmd
}

// serveAddr lets a platform-provided PORT win over the configured address
// unless --addr was given explicitly.
func serveAddr(flagSet bool, configured, port string) string {
	if port != "" && !flagSet {
		return ":" + port
	}
	return configured
}
