package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/megalamo/iconsync/internal/config"
	"github.com/megalamo/iconsync/internal/fonts"
	"github.com/megalamo/iconsync/internal/logging"
	"github.com/megalamo/iconsync/internal/scanner"
	"github.com/megalamo/iconsync/internal/tui"
	"github.com/megalamo/iconsync/pkg/iconsync"
)

var scanCmd = &cobra.Command{
	Use:   "scan [DIRECTORY...]",
	Short: "Scan templates for Material Symbols icon usage",
	Long: `Scan walks the given directories (default: assets) for *.jet.html and
*.templ files, extracts every Material Symbols icon marker, and prints a
summary of filled and unfilled icons in use.

With --update-fonts the sync stage then fetches a generated stylesheet for
each variant set, downloads the woff2 file only when its content changed,
and bumps the variant's cache-busting version marker in the local
stylesheet.

Settings precedence: flag > environment > iconsync.yaml > default.
Environment keys: ICONSYNC_CSS_PATH, ICONSYNC_FONTS_DIR, ICONSYNC_USER_AGENT.

Examples:
  # Inventory icon usage under assets
  iconsync scan

  # Scan several roots with per-icon counts
  iconsync scan assets/views templates -v

  # Inventory and refresh the local fonts
  iconsync scan --update-fonts

  # Sync against a different stylesheet
  iconsync scan --update-fonts --css-path assets/css/main.css

  # Layer settings from an env file
  iconsync scan --update-fonts --env-file prod.env`,
	Args: cobra.ArbitraryArgs,
	RunE: runScan,
}

type scanFlagValues struct {
	updateFonts bool
	cssPath     string
	fontsDir    string
	envFiles    []string
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanFlags.updateFonts, "update-fonts", false,
		"Fetch and install updated font files from Google")
	scanCmd.Flags().StringVar(&scanFlags.cssPath, "css-path", iconsync.DefaultStylesheetPath,
		"Stylesheet in which to bump the font version")
	scanCmd.Flags().StringVar(&scanFlags.fontsDir, "fonts-dir", iconsync.DefaultFontsDir,
		"Destination directory for downloaded woff2 files")
	scanCmd.Flags().StringSliceVar(&scanFlags.envFiles, "env-file", nil,
		"Env file with setting overrides (can be specified multiple times;\n"+
			"later files override earlier ones)")
}

type scanSettings struct {
	roots   []string
	syncCfg iconsync.SyncConfig
}

func runScan(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	// Layer env files before resolving settings
	_ = godotenv.Load()
	for _, envFile := range scanFlags.envFiles {
		if err := godotenv.Overload(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		cfg = &config.ProjectConfig{}
	}

	settings := resolveScanSettings(cmd, args, cfg)
	logger.Verbose("scan roots: %s", strings.Join(settings.roots, ", "))

	result, err := scanner.New(logger).ScanRoots(settings.roots)
	if err != nil {
		return err
	}

	fmt.Print(tui.RenderReport(result, len(settings.roots), verbose))

	if !scanFlags.updateFonts {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return fonts.New(logger).Sync(ctx, result, settings.syncCfg)
}

// resolveScanSettings applies the flag > env > config > default precedence.
func resolveScanSettings(cmd *cobra.Command, args []string, cfg *config.ProjectConfig) scanSettings {
	roots := args
	if len(roots) == 0 {
		roots = cfg.Scan.Roots
	}
	if len(roots) == 0 {
		roots = []string{iconsync.DefaultScanRoot}
	}

	return scanSettings{
		roots: roots,
		syncCfg: iconsync.SyncConfig{
			StylesheetPath: resolveSetting(cmd, "css-path", scanFlags.cssPath,
				"ICONSYNC_CSS_PATH", cfg.Fonts.StylesheetPath, iconsync.DefaultStylesheetPath),
			FontsDir: resolveSetting(cmd, "fonts-dir", scanFlags.fontsDir,
				"ICONSYNC_FONTS_DIR", cfg.Fonts.Dir, iconsync.DefaultFontsDir),
			UserAgent: resolveSetting(cmd, "", "",
				"ICONSYNC_USER_AGENT", cfg.Fonts.UserAgent, ""),
		},
	}
}

// resolveSetting picks the first value in precedence order: an explicitly
// set flag, an environment variable, the config file, the default.
func resolveSetting(cmd *cobra.Command, flagName, flagValue, envKey, cfgValue, defaultValue string) string {
	if flagName != "" && cmd.Flags().Changed(flagName) {
		return flagValue
	}
	if env := os.Getenv(envKey); env != "" {
		return env
	}
	if cfgValue != "" {
		return cfgValue
	}
	return defaultValue
}
