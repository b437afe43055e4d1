package cli

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/megalamo/iconsync/internal/config"
	"github.com/megalamo/iconsync/pkg/iconsync"
)

func resetScanFlags() {
	scanFlags = scanFlagValues{
		cssPath:  iconsync.DefaultStylesheetPath,
		fontsDir: iconsync.DefaultFontsDir,
	}
	for _, name := range []string{"update-fonts", "css-path", "fonts-dir", "env-file"} {
		if f := scanCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
}

func resetRewriteFlags() {
	rewriteFlags = rewriteFlagValues{}
	for _, name := range []string{"force", "icons-dir", "views-dir"} {
		if f := rewriteCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
}

func TestRootCmd_BareInvocation(t *testing.T) {
	err := rootCmd.RunE(rootCmd, []string{})
	if err == nil {
		t.Fatal("Expected usage error for bare invocation")
	}
	if !errors.Is(err, iconsync.ErrUsage) {
		t.Errorf("Expected ErrUsage, got: %v", err)
	}
	if code := iconsync.ExitCodeForError(err); code != iconsync.ExitFailure {
		t.Errorf("Expected exit code %d, got %d", iconsync.ExitFailure, code)
	}
}

func TestRewriteCmd_ArgsValidation_TooMany(t *testing.T) {
	err := rewriteCmd.Args(rewriteCmd, []string{"a", "b"})
	if err == nil {
		t.Fatal("Expected error for too many args")
	}
}

func TestProbeCmd_ArgsValidation_TooMany(t *testing.T) {
	err := probeCmd.Args(probeCmd, []string{"540", "600"})
	if err == nil {
		t.Fatal("Expected error for too many args")
	}
}

func TestResolveScanSettings_RootsPrecedence(t *testing.T) {
	resetScanFlags()

	cfg := &config.ProjectConfig{}
	cfg.Scan.Roots = []string{"templates"}

	settings := resolveScanSettings(scanCmd, []string{"views", "pages"}, cfg)
	if len(settings.roots) != 2 || settings.roots[0] != "views" {
		t.Errorf("Expected args to win, got %v", settings.roots)
	}

	settings = resolveScanSettings(scanCmd, nil, cfg)
	if len(settings.roots) != 1 || settings.roots[0] != "templates" {
		t.Errorf("Expected config roots, got %v", settings.roots)
	}

	settings = resolveScanSettings(scanCmd, nil, &config.ProjectConfig{})
	if len(settings.roots) != 1 || settings.roots[0] != iconsync.DefaultScanRoot {
		t.Errorf("Expected default root, got %v", settings.roots)
	}
}

func TestResolveScanSettings_SyncPrecedence(t *testing.T) {
	resetScanFlags()
	t.Setenv("ICONSYNC_CSS_PATH", "")
	t.Setenv("ICONSYNC_FONTS_DIR", "")
	t.Setenv("ICONSYNC_USER_AGENT", "")

	cfg := &config.ProjectConfig{}
	cfg.Fonts.StylesheetPath = "config/style.css"

	// Config beats default
	settings := resolveScanSettings(scanCmd, nil, cfg)
	if settings.syncCfg.StylesheetPath != "config/style.css" {
		t.Errorf("Expected config value, got %q", settings.syncCfg.StylesheetPath)
	}
	if settings.syncCfg.FontsDir != iconsync.DefaultFontsDir {
		t.Errorf("Expected default fonts dir, got %q", settings.syncCfg.FontsDir)
	}

	// Environment beats config
	t.Setenv("ICONSYNC_CSS_PATH", "env/style.css")
	settings = resolveScanSettings(scanCmd, nil, cfg)
	if settings.syncCfg.StylesheetPath != "env/style.css" {
		t.Errorf("Expected env value, got %q", settings.syncCfg.StylesheetPath)
	}

	// An explicitly set flag beats everything
	if err := scanCmd.Flags().Set("css-path", "flag/style.css"); err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}
	settings = resolveScanSettings(scanCmd, nil, cfg)
	if settings.syncCfg.StylesheetPath != "flag/style.css" {
		t.Errorf("Expected flag value, got %q", settings.syncCfg.StylesheetPath)
	}
	resetScanFlags()
}

func TestResolveRewriteDir(t *testing.T) {
	resetRewriteFlags()

	if got := resolveRewriteDir(rewriteCmd, "icons-dir", "", "", "root/icons"); got != "root/icons" {
		t.Errorf("Expected default, got %q", got)
	}
	if got := resolveRewriteDir(rewriteCmd, "icons-dir", "", "cfg/icons", "root/icons"); got != "cfg/icons" {
		t.Errorf("Expected config value, got %q", got)
	}

	if err := rewriteCmd.Flags().Set("icons-dir", "flag/icons"); err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}
	if got := resolveRewriteDir(rewriteCmd, "icons-dir", rewriteFlags.iconsDir, "cfg/icons", "root/icons"); got != "flag/icons" {
		t.Errorf("Expected flag value, got %q", got)
	}
	resetRewriteFlags()
}

func TestSelectApprover_Force(t *testing.T) {
	resetRewriteFlags()
	rewriteFlags.force = true

	approver, err := selectApprover()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if approver == nil {
		t.Fatal("Expected an approver")
	}
	resetRewriteFlags()
}

func TestSelectApprover_NonInteractiveWithoutForce(t *testing.T) {
	resetRewriteFlags()
	t.Setenv("ICONSYNC_NON_INTERACTIVE", "1")

	approver, err := selectApprover()
	if err == nil {
		t.Fatal("Expected error when stdin is not a terminal")
	}
	if approver != nil {
		t.Errorf("Expected nil approver, got %v", approver)
	}
	if !errors.Is(err, iconsync.ErrUsage) {
		t.Errorf("Expected ErrUsage, got: %v", err)
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("Expected hint about --force, got: %v", err)
	}
}

// chdirTemp switches to a fresh temp dir and restores the working
// directory on cleanup (t.Chdir requires Go 1.24+).
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestRunScan_MissingRoot(t *testing.T) {
	resetScanFlags()
	chdirTemp(t)

	err := runScan(scanCmd, []string{"no-such-dir"})
	if err == nil {
		t.Fatal("Expected error for missing scan root")
	}
	if !errors.Is(err, iconsync.ErrDirectoryNotFound) {
		t.Errorf("Expected ErrDirectoryNotFound, got: %v", err)
	}
}

func TestRunInit_CreatesConfig(t *testing.T) {
	initTemplate = "default"
	target := t.TempDir() + "/newproject"

	if err := runInit(initCmd, []string{target}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(target + "/" + config.ConfigFileName)
	if err != nil {
		t.Fatalf("Expected config file: %v", err)
	}
	if !strings.Contains(string(data), "newproject") {
		t.Errorf("Expected project name substitution, got:\n%s", data)
	}
}

func TestRunInit_InvalidTemplate(t *testing.T) {
	initTemplate = "nope"
	defer func() { initTemplate = "default" }()

	err := runInit(initCmd, []string{t.TempDir() + "/x"})
	if err == nil {
		t.Fatal("Expected error for unknown template")
	}
	if !errors.Is(err, iconsync.ErrUsage) {
		t.Errorf("Expected ErrUsage, got: %v", err)
	}
}

func TestRunRewrite_MissingDirectories(t *testing.T) {
	resetRewriteFlags()
	rewriteFlags.force = true
	chdirTemp(t)

	err := runRewrite(rewriteCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing icons directory")
	}
	if !errors.Is(err, iconsync.ErrDirectoryNotFound) {
		t.Errorf("Expected ErrDirectoryNotFound, got: %v", err)
	}
	resetRewriteFlags()
}
