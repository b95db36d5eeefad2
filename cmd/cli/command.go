// Package cli provides the titlecase command line interface
package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"titlecase/config"
	"titlecase/constants/zapkey"
	"titlecase/gruber"
	"titlecase/log"
	"titlecase/stream"
)

// Flags holds the command line overrides for the configuration
type Flags struct {
	Workers  int
	LogLevel string
}

// NewTitleCaseCmd creates the root command. Positional arguments are
// title-cased one per line; without arguments lines are read from stdin.
func NewTitleCaseCmd(version string) *cobra.Command {
	flags := Flags{}
	c := cobra.Command{
		Use:   "titlecase [text...]",
		Short: "Convert text to title case",
		Long: "Convert text to title case in the style of John Gruber's Daring Fireball.\n\n" +
			"Each line of standard input, or each argument, is written to standard output in title case.",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			log.SetLevel(cfg.LogLevel)
			logger.Debug("Starting",
				zap.String(zapkey.Version, version),
				zap.Int(zapkey.Workers, cfg.Workers),
				zap.Stringer(zapkey.Level, cfg.LogLevel),
			)

			p, err := stream.NewProcessor(
				gruber.TitleCase,
				stream.WithWorkers(cfg.Workers),
				stream.WithErrorWriter(cmd.ErrOrStderr()),
			)
			if err != nil {
				return errors.Wrap(err, "failed to create line processor")
			}

			in := cmd.InOrStdin()
			if len(args) > 0 {
				in = strings.NewReader(strings.Join(args, "\n") + "\n")
			}
			if err = p.Run(cmd.Context(), in, cmd.OutOrStdout()); err != nil {
				return errors.Wrap(err, "failed to title-case input")
			}
			return nil
		},
	}
	c.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "number of lines to title-case concurrently")
	c.Flags().StringVar(&flags.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	return &c
}

// loadConfig builds the config from the environment and any flags that were set
func loadConfig(cmd *cobra.Command, flags *Flags) (*config.Config, error) {
	var opts []config.Option
	if cmd.Flags().Changed("workers") {
		opts = append(opts, config.WithWorkers(flags.Workers))
	}
	if cmd.Flags().Changed("log-level") {
		lvl, err := zapcore.ParseLevel(flags.LogLevel)
		if err != nil {
			return nil, errors.Errorf("invalid log level %q", flags.LogLevel)
		}
		opts = append(opts, config.WithLogLevel(lvl))
	}
	cfg, err := config.NewConfig(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}
