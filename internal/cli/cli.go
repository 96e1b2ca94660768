// Package cli provides the hopdist command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hopdist/internal/config"
	"github.com/katalvlaran/hopdist/internal/logging"
)

const (
	rootUse              = "hopdist"
	rootShortDescription = "hop distances over undirected graphs"
	rootLongDescription  = `hopdist reads an undirected graph from a text file and prints the
breadth-first (fewest edges) distance from a start vertex to every other vertex.
Unreachable vertices are reported as -1.`

	configFlagName          = "config"
	configFlagDescription   = "path to a hopdist.yaml configuration file"
	logLevelFlagName        = "log-level"
	logLevelFlagDescription = "log level: debug, info, warn or error"
)

// application carries state shared by subcommands once configuration is loaded.
type application struct {
	logger        *zap.Logger
	level         zap.AtomicLevel
	configuration config.Configuration
	configPath    string
	logLevel      string
}

// NewRootCommand builds the root Cobra command. logger and level come from
// the process entry point; level is adjusted after configuration loads.
func NewRootCommand(logger *zap.Logger, level zap.AtomicLevel) *cobra.Command {
	app := &application{logger: logger, level: level}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return app.loadConfiguration()
		},
	}
	rootCommand.PersistentFlags().StringVar(&app.configPath, configFlagName, "", configFlagDescription)
	rootCommand.PersistentFlags().StringVar(&app.logLevel, logLevelFlagName, "", logLevelFlagDescription)
	rootCommand.AddCommand(
		createDistancesCommand(app),
		createGenerateCommand(app),
	)
	return rootCommand
}

// Execute runs hopdist with os.Args.
func Execute(logger *zap.Logger, level zap.AtomicLevel) error {
	return NewRootCommand(logger, level).Execute()
}

func (app *application) loadConfiguration() error {
	configuration, err := config.Load(config.LoadOptions{ExplicitFilePath: app.configPath})
	if err != nil {
		return err
	}
	if app.logLevel != "" {
		configuration.LogLevel = app.logLevel
	}
	if err = logging.SetLevel(app.level, configuration.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", logLevelFlagName, err)
	}
	app.configuration = configuration
	app.logger.Debug("configuration loaded",
		zap.String("input", configuration.Input),
		zap.String("format", configuration.Format),
		zap.Int("max_depth", configuration.MaxDepth),
	)
	return nil
}
