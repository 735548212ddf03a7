package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/NickyBoy89/classcheck/dot"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Set at build time with -ldflags
	version = "dev"
)

// errValidation is returned in strict mode when validation finds errors
var errValidation = errors.New("validation found errors")

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, errValidation) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "classcheck [source-file]",
		Short: "Check that classes correctly inherit from and implement their parents",
		Long: `classcheck reads a single source file and checks that every class declares the
methods of the class it extends and of the interfaces it implements, and warns
about private member variables.`,
		Args:    cobra.ExactArgs(1),
		Version: version,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"java"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument checking, errors are no longer about usage
			cmd.SilenceUsage = true

			config, err := LoadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if err := config.ApplyFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return err
			}
			return run(cmd, args[0], config)
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigFile, "Path to a YAML config file")
	registerFlags(rootCmd.Flags())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "classcheck version %s\n", version)
		},
	})

	return rootCmd
}

func run(cmd *cobra.Command, path string, config Config) error {
	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if err := config.ConfigureLogger(logger); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report, err := CheckFile(ctx, path, logger)
	if err != nil {
		return err
	}

	if config.Graph != "" {
		if err := dot.Hierarchy(report.Table).WriteToFile(config.Graph); err != nil {
			return fmt.Errorf("writing graph: %w", err)
		}
		logger.WithField("file", config.Graph).Info("Wrote class hierarchy graph")
	}

	if err := config.Reporter().Report(cmd.OutOrStdout(), report.Sections()); err != nil {
		return err
	}

	if config.Strict && report.Result.HasErrors() {
		return errValidation
	}
	return nil
}
