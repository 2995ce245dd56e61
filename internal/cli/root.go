package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/config"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// settings is filled by the root command before any subcommand runs.
type settings struct {
	configPath string
	logLevel   string
	output     string

	conf   *config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rt := &settings{
		configPath: "config.yml",
		output:     outputText,
	}

	rootCmd := &cobra.Command{
		Use:   "connectfour",
		Short: "Four-in-a-row rules engine",
		Long: `connectfour drives the four-in-a-row rules engine.

The board size and player tags come from config.yml (or the environment
when the file is absent).`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.load(cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&rt.configPath, "config", "c", rt.configPath, "Config file path")
	rootCmd.PersistentFlags().StringVar(&rt.logLevel, "log-level", rt.logLevel, "Log level: debug, info, warn, error (env: LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&rt.output, "output", "o", rt.output, "Output format: text, json")

	rootCmd.AddCommand(newReplayCmd(rt))
	rootCmd.AddCommand(newSelfPlayCmd(rt))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (that *settings) load(logOut io.Writer) error {
	if that.output != outputText && that.output != outputJSON {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownOutputFormat, that.output)
	}

	conf, err := loadConfig(that.configPath)
	if err != nil {
		return err
	}

	if that.logLevel != "" {
		conf.LogLevel = that.logLevel
	}

	that.conf = conf
	that.logger = initLogger(conf.LogLevel, logOut)

	return nil
}

// loadConfig reads path, or only the environment when path does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		conf, err := config.LoadEnv()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}

		return conf, nil
	}

	conf, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, nil
}

// initialize logger.
func initLogger(logLevel string, out io.Writer) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
