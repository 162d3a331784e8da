package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kastheco/codecolor/config"
	"github.com/kastheco/codecolor/internal/colorapi"
	"github.com/kastheco/codecolor/internal/logging"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var version = "dev"

// SetVersion sets the version reported by --version and the MCP server.
func SetVersion(v string) {
	version = v
}

// rootOptions carries the persistent flags and the loaded config to every
// subcommand.
type rootOptions struct {
	configPath string
	output     string
	logLevel   string

	cfg config.Config
}

// NewRootCmd returns the root cobra command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "codecolor",
		Short: "codecolor - build accessible editor color themes",
		Long: `codecolor converts and analyses colors (hex, RGB, HSL, CMYK), checks
WCAG 2.1 contrast, generates harmonies and ramps, and edits a 24-slot
editor theme with syntax, diagnostic and status-line role mappings.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "codecolor version %s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/codecolor/config.toml)")
	pf.StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")

	root.AddCommand(newConvertCmd(opts))
	root.AddCommand(newComponentsCmd(opts))
	root.AddCommand(newContrastCmd(opts))
	root.AddCommand(newSuggestCmd(opts))
	root.AddCommand(newHarmonyCmd(opts))
	root.AddCommand(newRampCmd(opts))
	root.AddCommand(newThemeCmd(opts))
	root.AddCommand(NewServeCmd(opts))
	root.AddCommand(newMCPCmd(opts))
	root.AddCommand(newEditCmd(opts))
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	switch o.output {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}

	path := o.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	o.cfg = cfg

	levelName := cfg.LogLevel
	if o.logLevel != "" {
		levelName = o.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	logging.Debug("CLI", "loaded config from %s", path)
	return nil
}

func (o *rootOptions) defaults() colorapi.Defaults {
	return colorapi.Defaults{
		TargetRatio:    o.cfg.TargetRatio,
		ShadeCount:     o.cfg.ShadeCount,
		TintCount:      o.cfg.TintCount,
		AnalogousAngle: o.cfg.AnalogousAngle,
	}
}

// print writes v in the selected structured format, or calls text for the
// plain-text rendering.
func (o *rootOptions) print(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	switch o.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	text(w)
	return nil
}
