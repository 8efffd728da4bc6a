package main

import (
	"fmt"
	"os"

	"github.com/On-Jun9/ShutterRename/internal/config"
	"github.com/On-Jun9/ShutterRename/internal/display"
	"github.com/On-Jun9/ShutterRename/internal/pipeline"
	"github.com/On-Jun9/ShutterRename/internal/prompt"
	"github.com/On-Jun9/ShutterRename/internal/term"
	"github.com/On-Jun9/ShutterRename/pkg/types"
	"github.com/spf13/cobra"
)

var (
	appVersion = "0.1.0"
	cfgFile    string
	includeExt []string
	dateFormat string
	missingExt string
	logFile    string
	logJSON    bool
	colorMode  string
	noLock     bool
	verbose    bool
	dryRun     bool
	showDiff   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s■%s  %v\n", term.Red, term.NC, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shutterrename [path]",
	Short: "Rename pictures after their creation date",
	Long: `ShutterRename renames the images of one directory to the date they were
created (YYYY-MM-DD.ext), adding _1, _2, ... when several share the same name.`,
	Version:       appVersion,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRename,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.Flags().StringSliceVarP(&includeExt, "include-ext", "e", nil, "image extensions to rename")
	rootCmd.Flags().StringVar(&dateFormat, "date-format", "", "name granularity: date, datetime")
	rootCmd.Flags().StringVar(&missingExt, "missing-ext", "", "files without extension: skip, fail")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file path")
	rootCmd.Flags().BoolVar(&logJSON, "log-json", false, "output JSON logs")
	rootCmd.Flags().StringVar(&colorMode, "color", "", "console colors: auto, always, never")
	rootCmd.Flags().BoolVar(&noLock, "no-lock", false, "do not lock the directory during the run")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every renamed file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be renamed without renaming")
	rootCmd.Flags().BoolVar(&showDiff, "diff", false, "print the directory listing diff")
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if len(includeExt) > 0 {
		cfg.IncludeExtensions = includeExt
	}
	if dateFormat != "" {
		cfg.DateFormat = types.DateFormat(dateFormat)
	}
	if missingExt != "" {
		cfg.MissingExtension = types.MissingExtensionPolicy(missingExt)
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logJSON {
		cfg.LogJSON = true
	}
	if colorMode != "" {
		cfg.Color = types.ColorMode(colorMode)
	}
	if noLock {
		cfg.LockDir = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	term.Configure(cfg.Color)

	out := cmd.OutOrStdout()
	p, err := pipeline.New(cfg, out)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Close()

	display.Intro(out, "Image renamer")

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	if err := p.ValidatePath(path); err != nil {
		if !term.IsTerminal(os.Stdin) {
			return err
		}
		path, err = prompt.New(os.Stdin, out).Input(
			"Where are your pictures located on your computer",
			"path/to/my/pictures",
			p.ValidatePath,
		)
		if err != nil {
			return err
		}
	}

	if _, err := p.Run(types.Params{
		Path:     path,
		Verbose:  verbose,
		DryRun:   dryRun,
		ShowDiff: showDiff,
	}); err != nil {
		return err
	}

	if dryRun {
		display.Outro(out, "Dry run finished, nothing was renamed.")
		return nil
	}
	display.Outro(out, "Your pictures have been renamed successfully!")
	return nil
}
