package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/konane/internal"
	"github.com/rocketscienceinc/konane/internal/config"
)

const version = "v0.1.0"

// Root - builds the konane command.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "konane",
		Short: "Play the Hawaiian board game Kōnane in the terminal",
		Long: heredoc.Doc(`konane starts a two-player game of Kōnane on a 10x10
			board. Players take turns at the same terminal.

			Before the first move two adjacent pieces are removed to open
			the board. A move names the piece to move and every cell it
			lands on, e.g. "E2 E4 E6" jumps twice. The first player who
			cannot jump loses.

			Settings are read from the config file and KONANE_* environment
			variables; flags override both.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger, err := newLogger(conf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return application.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.Flags().StringP("config", "c", "config.yml", "Path to the config file")
	root.Flags().StringP("first", "f", "", "Player who moves first: white, black or random")
	root.Flags().StringP("log-level", "l", "", "Log level: debug, info, warn or error")
	root.Flags().Bool("auto-opening", false, "Remove the centre pair instead of asking")

	root.SetVersionTemplate("{{.Version}}\n")
	root.Version = version

	return root
}

// loadConfig - reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	conf, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	if cmd.Flags().Changed("first") {
		conf.FirstPlayer, _ = cmd.Flags().GetString("first")
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	if cmd.Flags().Changed("auto-opening") {
		conf.AutoOpening, _ = cmd.Flags().GetBool("auto-opening")
	}

	return conf, nil
}

// newLogger - builds the process logger; output goes to w so it stays off the board.
func newLogger(conf *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := conf.Level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if conf.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
