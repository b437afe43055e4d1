package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/megalamo/iconsync/internal/config"
	"github.com/megalamo/iconsync/internal/logging"
	"github.com/megalamo/iconsync/internal/rewrite"
	"github.com/megalamo/iconsync/internal/tui"
	"github.com/megalamo/iconsync/internal/ui"
	"github.com/megalamo/iconsync/pkg/iconsync"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [ROOT]",
	Short: "Migrate icon classes from SVG files to template call sites",
	Long: `Rewrite migrates the icon-class convention in two passes:

1. Finds class="..." in assets/icons/*.svg, records a map of
   icon-id -> class string, and removes the attribute from each SVG.
2. Finds one-argument icon("id") calls in assets/views/**/*.jet.html and
   rewrites them to icon("id", "class string") when a class was recorded.

ROOT defaults to the current directory and must contain the icons and views
directories. Files are modified in place, so the run asks for confirmation
first; pass --force in scripts and CI.

Examples:
  # Migrate the project in the current directory
  iconsync rewrite

  # Migrate another checkout without prompting
  iconsync rewrite ../pixivfe --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRewrite,
}

type rewriteFlagValues struct {
	force    bool
	iconsDir string
	viewsDir string
}

var rewriteFlags rewriteFlagValues

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().BoolVar(&rewriteFlags.force, "force", false,
		"Skip the interactive confirmation prompt")
	rewriteCmd.Flags().StringVar(&rewriteFlags.iconsDir, "icons-dir", "",
		"SVG icons directory (default: ROOT/"+iconsync.DefaultIconsDir+")")
	rewriteCmd.Flags().StringVar(&rewriteFlags.viewsDir, "views-dir", "",
		"Templates directory (default: ROOT/"+iconsync.DefaultViewsDir+")")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := config.Load(root)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		cfg = &config.ProjectConfig{}
	}

	rewriteCfg := iconsync.RewriteConfig{
		IconsDir: resolveRewriteDir(cmd, "icons-dir", rewriteFlags.iconsDir,
			cfg.Rewrite.IconsDir, filepath.Join(root, iconsync.DefaultIconsDir)),
		ViewsDir: resolveRewriteDir(cmd, "views-dir", rewriteFlags.viewsDir,
			cfg.Rewrite.ViewsDir, filepath.Join(root, iconsync.DefaultViewsDir)),
	}

	approver, err := selectApprover()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := rewrite.New(logger).Run(ctx, rewriteCfg, approver)
	if err != nil {
		return err
	}

	logger.Info("Rewrite finished: %d SVG files modified, %d of %d templates updated.",
		summary.SVGsModified, summary.TemplatesModified, summary.TemplatesScanned)
	return nil
}

func resolveRewriteDir(cmd *cobra.Command, flagName, flagValue, cfgValue, defaultValue string) string {
	if cmd.Flags().Changed(flagName) {
		return flagValue
	}
	if cfgValue != "" {
		return cfgValue
	}
	return defaultValue
}

// selectApprover picks the confirmation strategy. Without --force a
// terminal is required; refusing beats silently rewriting files in a
// pipeline.
func selectApprover() (iconsync.Approver, error) {
	if rewriteFlags.force {
		return ui.NewForcedApprover(), nil
	}
	if !tui.IsInteractive() {
		return nil, fmt.Errorf("%w: standard input is not a terminal; use --force to rewrite without confirmation", iconsync.ErrUsage)
	}
	return ui.NewInteractiveApprover(), nil
}
