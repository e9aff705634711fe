// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/lsdir/internal/config"
	"github.com/temirov/lsdir/internal/tree"
	"github.com/temirov/lsdir/internal/utils"
)

const (
	ignoreFlagName      = "ignore"
	ignoreFlagShorthand = "i"
	configFlagName      = "config"
	debugFlagName       = "debug"
	versionFlagName     = "version"
	versionTemplate     = "lsdir version: %s\n"

	rootUse              = "lsdir"
	rootShortDescription = "print the directory tree of the working directory"
	rootLongDescription  = `lsdir prints every file and directory below the working directory,
indented two spaces per level and sorted by name.
Directories named node_modules, .git and __pycache__ are skipped unless
--ignore or the ignore list of a configuration file says otherwise.`
	rootUsageExample = `  # List the current project
  lsdir

  # Skip vendor and dist instead of the defaults
  lsdir -i vendor -i dist`

	ignoreFlagDescription  = "directory name to skip (repeatable, replaces the defaults)"
	configFlagDescription  = "configuration file (default ./" + utils.LocalConfigFileName + ")"
	debugFlagDescription   = "log directories skipped for lack of permission"
	versionFlagDescription = "display application version"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	skippedDirectoryMessage     = "skipped unreadable directory"
	ignoreSetMessage            = "resolved ignore set"
)

// Dependencies carries process-wide collaborators into the command tree.
type Dependencies struct {
	Logger *zap.Logger
	// LogLevel is raised to debug by --debug when set.
	LogLevel *zap.AtomicLevel
	// FileSystem is used for listing; nil selects the host filesystem.
	FileSystem afero.Fs
}

// Execute runs the lsdir application.
func Execute(dependencies Dependencies) error {
	return createRootCommand(dependencies).Execute()
}

// rootOptions stores values bound to the root command flags.
type rootOptions struct {
	ignoreNames       []string
	configurationPath string
	debugEnabled      bool
	showVersion       bool
}

// createRootCommand builds the root Cobra command.
func createRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if options.debugEnabled && dependencies.LogLevel != nil {
				dependencies.LogLevel.SetLevel(zap.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				_, err := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return err
			}
			return runListing(command, dependencies, options)
		},
	}
	rootCommand.Flags().StringArrayVarP(&options.ignoreNames, ignoreFlagName, ignoreFlagShorthand, nil, ignoreFlagDescription)
	rootCommand.Flags().StringVar(&options.configurationPath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().BoolVar(&options.debugEnabled, debugFlagName, false, debugFlagDescription)
	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runListing prints the header and tree for the working directory.
func runListing(command *cobra.Command, dependencies Dependencies, options rootOptions) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}

	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configurationPath,
	})
	if configurationError != nil {
		return configurationError
	}

	ignoreSet := resolveIgnoreSet(command.Flags().Changed(ignoreFlagName), options.ignoreNames, configuration)
	dependencies.Logger.Debug(ignoreSetMessage, zap.Strings(ignoreFlagName, ignoreSet.Names()))

	printer := tree.NewPrinter(tree.PrinterOptions{
		FileSystem: dependencies.FileSystem,
		Output:     command.OutOrStdout(),
		SkipDirectory: func(path string, cause error) {
			dependencies.Logger.Debug(skippedDirectoryMessage, zap.String("path", path), zap.Error(cause))
		},
	})
	return printer.Run(workingDirectory, ignoreSet)
}

// resolveIgnoreSet applies flag values, then configuration, then the defaults.
func resolveIgnoreSet(flagProvided bool, flagNames []string, configuration config.ApplicationConfiguration) tree.IgnoreSet {
	if flagProvided {
		return tree.NewIgnoreSet(flagNames...)
	}
	if configuration.IgnoreConfigured {
		return tree.NewIgnoreSet(configuration.Ignore...)
	}
	return tree.DefaultIgnoreSet()
}
