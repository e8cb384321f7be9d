// Package cmd provides the root command and CLI setup for cyclact.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/cyclact/internal/adapter"
	"github.com/mouse-blink/cyclact/internal/controller"
	"github.com/mouse-blink/cyclact/internal/domain"
)

const defaultReportsDir = ".cyclact-reports"

var workflow domain.Workflow
var logger = logrus.New()

// cfg holds the settings of the running command: flags, CYCLACT_* variables
// and the optional config file, in that order of precedence.
var cfg = viper.New()

func init() {
	ui := controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(
		domain.NewEnumerator(logger),
		domain.NewOrchestrator(domain.NewSearcher(), logger),
		ui,
		adapter.NewLocalResultStore(),
		adapter.NewLocalQueryFileAdapter(),
		logger,
	)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cyclact",
		Short: "Enumerate cyclic group actions on curves",
		Long: `Cyclact lists the possible signatures (n, g', [(d,r), ...]) of faithful
actions of a cyclic group Z/n on a smooth curve of genus g. Each signature
satisfies the Riemann–Hurwitz formula and the rotation-sum condition and
contains the ramification points given on the command line.

Ramification points are written ORDER/ROTATION: 3/1 is a point whose
stabilizer has order 3 and whose stabilizer generator rotates the tangent
space by exp(2πi/3).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
	}
	cmd.PersistentFlags().String("reports", defaultReportsDir, "directory for saved reports")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	cmd.PersistentFlags().String("config", "", "config file (default ./.cyclact.yaml)")

	return cmd
}

func initConfig(cmd *cobra.Command) error {
	cfg = viper.New()

	if err := cfg.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	cfg.SetEnvPrefix("CYCLACT")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	explicit := cfg.GetString("config")
	if explicit != "" {
		cfg.SetConfigFile(explicit)
	} else {
		cfg.SetConfigName(".cyclact")
		cfg.SetConfigType("yaml")
		cfg.AddConfigPath(".")
	}

	readErr := cfg.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if readErr != nil && (explicit != "" || !errors.As(readErr, &notFound)) {
		return fmt.Errorf("read config: %w", readErr)
	}

	configureLogger(cmd)

	if readErr == nil {
		logger.WithField("file", cfg.ConfigFileUsed()).Debug("config loaded")
	}

	return nil
}

func configureLogger(cmd *cobra.Command) {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch {
	case cfg.GetBool("verbose"):
		logger.SetLevel(logrus.DebugLevel)
	case cfg.IsSet("log-level"):
		level, err := logrus.ParseLevel(cfg.GetString("log-level"))
		if err != nil {
			logger.SetLevel(logrus.WarnLevel)
			logger.WithError(err).Warn("ignoring log-level")

			return
		}

		logger.SetLevel(level)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !domain.IsDisplayed(err) {
			_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}

		os.Exit(1)
	}
}
