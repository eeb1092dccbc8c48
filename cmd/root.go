// Package cmd wires the folio command line: the terminal page by default,
// plus the HTTP server and version commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/observability"
	"github.com/olivier-w/folio/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app is what PersistentPreRunE hands to every command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "folio",
		Short:         "A portfolio page for the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPage(cmd.Context())
		},
	}
	root.SetVersionTemplate("folio {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./folio.yaml)")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	bindFlags(a.v, flags)

	root.AddCommand(newServeCmd(a), newVersionCmd())
	return root
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"log-file":  "logger.file",
	"log-level": "logger.level",
	"addr":      "server.addr",
}

// bindFlags binds every known flag in flags so that, when set, it beats
// the environment and the config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})
}

// load reads .env, the config file and the environment, then validates.
func (a *app) load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) runPage(ctx context.Context) error {
	// The page owns the terminal, so logs only go to a file.
	log, err := observability.NewLogger(a.cfg.Logger, nil)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	m, err := ui.New(a.cfg, log)
	if err != nil {
		return err
	}

	log.Info("starting page", zap.String("version", Version))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
