package rewrite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/megalamo/iconsync/pkg/iconsync"
)

var (
	// svgClassPattern finds the class attribute inside an opening <svg> tag.
	// Groups: 1 before the attribute, 2 the class value, 3 after it.
	svgClassPattern = regexp.MustCompile(`(?is)(<\s*svg[^>]*?)\s+class="([^"]+)"([^>]*>)`)

	// iconCallPattern finds one-argument icon("id") template calls. Calls
	// that already carry a class argument do not match, which makes the
	// template pass idempotent.
	iconCallPattern = regexp.MustCompile(`icon\("([^"]+)"\s*\)`)
)

// Summary reports what a rewrite run changed.
type Summary struct {
	SVGsModified      int
	ClassesExtracted  int
	TemplatesScanned  int
	TemplatesModified int
}

// Rewriter performs the in-place icon-class migration.
type Rewriter struct {
	logger iconsync.Logger
}

// New creates a Rewriter. Panics if logger is nil.
func New(logger iconsync.Logger) *Rewriter {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Rewriter{logger: logger}
}

// Run executes both migration passes after obtaining approval. Per-file
// failures are logged and skipped; missing directories are fatal.
func (r *Rewriter) Run(ctx context.Context, cfg iconsync.RewriteConfig, approver iconsync.Approver) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if err := requireDirectory(cfg.IconsDir); err != nil {
		return Summary{}, err
	}
	if err := requireDirectory(cfg.ViewsDir); err != nil {
		return Summary{}, err
	}

	svgs, err := findSVGFiles(cfg.IconsDir)
	if err != nil {
		return Summary{}, err
	}
	if len(svgs) == 0 {
		r.logger.Warn("no SVG files found in %s", cfg.IconsDir)
	}

	templates, err := findTemplateFiles(cfg.ViewsDir)
	if err != nil {
		return Summary{}, err
	}

	summary := fmt.Sprintf("rewrite class attributes out of %d SVG files in %s and update icon() calls across %d templates under %s",
		len(svgs), cfg.IconsDir, len(templates), cfg.ViewsDir)
	approved, err := approver.RequestApproval(ctx, summary)
	if err != nil {
		return Summary{}, fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return Summary{}, iconsync.ErrRewriteDeclined
	}

	result := Summary{TemplatesScanned: len(templates)}
	classes := r.processSVGFiles(svgs, &result)
	if len(classes) == 0 {
		r.logger.Warn("no classes were extracted from SVG files; template pass will make no changes")
	}

	r.processTemplateFiles(templates, classes, &result)
	return result, nil
}

func requireDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", iconsync.ErrDirectoryNotFound, path)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", iconsync.ErrDirectoryNotFound, path)
	}
	return nil
}

// findSVGFiles lists *.svg directly in iconsDir, sorted by name.
func findSVGFiles(iconsDir string) ([]string, error) {
	entries, err := os.ReadDir(iconsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read icons directory: %w", err)
	}

	var svgs []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".svg") {
			svgs = append(svgs, filepath.Join(iconsDir, entry.Name()))
		}
	}
	return svgs, nil
}

// findTemplateFiles lists *.jet.html recursively under viewsDir, sorted.
func findTemplateFiles(viewsDir string) ([]string, error) {
	var templates []string
	err := filepath.Walk(viewsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".jet.html") {
			templates = append(templates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk views directory: %w", err)
	}
	return templates, nil
}

// processSVGFiles extracts and strips class attributes, returning the
// icon-id -> class map. The icon id is the file basename without extension.
func (r *Rewriter) processSVGFiles(svgs []string, summary *Summary) map[string]string {
	classes := make(map[string]string)

	for _, svgPath := range svgs {
		iconID := strings.TrimSuffix(filepath.Base(svgPath), ".svg")

		content, err := os.ReadFile(svgPath)
		if err != nil {
			r.logger.Error("failed to read %s: %v", svgPath, err)
			continue
		}

		match := svgClassPattern.FindSubmatch(content)
		if match == nil {
			r.logger.Verbose("no class attribute found in %s", filepath.Base(svgPath))
			continue
		}

		classValue := strings.TrimSpace(string(match[2]))
		if classValue == "" {
			continue
		}
		classes[iconID] = classValue
		summary.ClassesExtracted++
		r.logger.Verbose("found class %q in %s", classValue, filepath.Base(svgPath))

		// Strip only the first occurrence, the opening tag
		stripped := append(append([]byte{}, match[1]...), match[3]...)
		updated := strings.Replace(string(content), string(match[0]), string(stripped), 1)
		if updated == string(content) {
			r.logger.Warn("failed to remove class attribute cleanly from %s", filepath.Base(svgPath))
			continue
		}

		if err := os.WriteFile(svgPath, []byte(updated), 0o644); err != nil {
			r.logger.Error("failed to write %s: %v", svgPath, err)
			continue
		}
		summary.SVGsModified++
		r.logger.Info("removed class attribute from %s", filepath.Base(svgPath))
	}

	return classes
}

// processTemplateFiles rewrites one-argument icon calls to carry the class
// recorded for the icon id. Files without changes are not rewritten.
func (r *Rewriter) processTemplateFiles(templates []string, classes map[string]string, summary *Summary) {
	for _, templatePath := range templates {
		content, err := os.ReadFile(templatePath)
		if err != nil {
			r.logger.Error("failed to read %s: %v", templatePath, err)
			continue
		}

		updated := iconCallPattern.ReplaceAllStringFunc(string(content), func(call string) string {
			iconID := iconCallPattern.FindStringSubmatch(call)[1]
			classString, ok := classes[iconID]
			if !ok {
				return call
			}
			r.logger.Verbose("updating icon call for %q in %s", iconID, filepath.Base(templatePath))
			return fmt.Sprintf("icon(%q, %q)", iconID, classString)
		})

		if updated == string(content) {
			continue
		}
		if err := os.WriteFile(templatePath, []byte(updated), 0o644); err != nil {
			r.logger.Error("failed to write %s: %v", templatePath, err)
			continue
		}
		summary.TemplatesModified++
		r.logger.Info("saved changes to %s", templatePath)
	}
}
