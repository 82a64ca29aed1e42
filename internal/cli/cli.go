// Package cli defines the command line interface around the generation app.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/john-livingston/DNest4/internal/app"
)

const (
	appName    = "dnest4-builder"
	appVersion = "0.1.0"
)

// NewRootCmd builds the root command. The model path is taken from the
// --model flag or the first positional argument.
func NewRootCmd() *cobra.Command {
	modelPath := ""
	templateDir := ""
	outputDir := ""
	logFormat := ""
	logLevel := ""
	showVersion := false

	cmd := &cobra.Command{
		Use:           appName + " [MODEL_PATH]",
		Short:         "Compile a declarative model description into DNest4 sampler source",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, appVersion)
				return err
			}

			path := modelPath
			if path == "" && len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return cmd.Help()
			}

			format := strings.ToLower(logFormat)
			if format != "text" && format != "json" {
				return fmt.Errorf("invalid log-format: must be 'text' or 'json'")
			}
			level := strings.ToLower(logLevel)
			switch level {
			case "debug", "info", "warn", "error":
			default:
				return fmt.Errorf("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
			}

			config, err := app.NewConfig(app.Config{
				ModelPath:   path,
				TemplateDir: templateDir,
				OutputDir:   outputDir,
				LogFormat:   format,
				LogLevel:    level,
			})
			if err != nil {
				return err
			}

			return app.New(cmd.OutOrStdout(), config).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "path to the model description file or directory")
	cmd.Flags().StringVarP(&templateDir, "templates", "t", "templates", "directory containing MyModel.h.template and MyModel.cpp.template")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "directory to write the generated files into")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log output format: 'text' or 'json'")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "logging level: 'debug', 'info', 'warn', or 'error'")
	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print version")

	return cmd
}
