package scanner

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/megalamo/iconsync/internal/files/filesystem"
	"github.com/megalamo/iconsync/pkg/iconsync"
)

// markerPattern builds the icon-marker expression for one tag kind. An icon
// marker is an opening <span> or <div> whose class attribute carries the
// material-symbols-rounded token (optionally with a -fill modifier and/or a
// numeric size suffix), inner text of word characters, and a closing tag of
// the same kind. RE2 has no backreferences, so the same-kind constraint is
// baked into one compiled pattern per kind: a span-open/div-close sequence
// matches neither pattern.
func markerPattern(kind string) *regexp.Regexp {
	return regexp.MustCompile(
		`<` + kind + `[^>]*\bclass="[^"]*\b` + iconsync.ClassToken +
			`(?:-fill)?(?:-\d+)?\b[^"]*"[^>]*>\s*([\w_]+)\s*</` + kind + `>`)
}

var markerPatterns = []*regexp.Regexp{
	markerPattern("span"),
	markerPattern("div"),
}

// Scanner discovers template files and extracts icon markers from them.
type Scanner struct {
	fsProvider filesystem.Provider
	logger     iconsync.Logger
}

// New creates a scanner backed by the OS filesystem.
// Panics if logger is nil.
func New(logger iconsync.Logger) *Scanner {
	return NewWithFS(logger, filesystem.NewOSFileSystem())
}

// NewWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if logger or fsProvider is nil.
func NewWithFS(logger iconsync.Logger, fsProvider filesystem.Provider) *Scanner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ScanRoots walks each root, collects template files, and extracts icon
// markers from their text.
//
// A missing root is fatal and aborts the scan before any file is processed.
// An unreadable or non-UTF-8 file is logged and skipped; it still counts
// toward FilesScanned. Empty roots or no matching files yield an empty
// result, not an error.
func (s *Scanner) ScanRoots(roots []string) (iconsync.ScanResult, error) {
	files, err := s.collectFiles(roots)
	if err != nil {
		return iconsync.ScanResult{}, err
	}

	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	// Sorted processing keeps counts reproducible when multiple roots
	// yield overlapping files
	sort.Strings(paths)

	result := iconsync.NewScanResult()
	result.FilesScanned = len(paths)

	for _, p := range paths {
		content, err := files[p].ReadContent()
		if err != nil {
			s.logger.Warn("cannot read %s: %v", p, err)
			continue
		}
		if !utf8.Valid(content) {
			s.logger.Warn("cannot read %s: not valid UTF-8", p)
			continue
		}
		scanText(string(content), &result)
	}

	return result, nil
}

// collectFiles enumerates template files under every root, deduplicated by
// absolute path.
func (s *Scanner) collectFiles(roots []string) (map[string]filesystem.File, error) {
	files := make(map[string]filesystem.File)

	for _, root := range roots {
		dir, err := s.fsProvider.Open(root)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", iconsync.ErrDirectoryNotFound, root, err)
		}

		err = dir.Walk(func(file filesystem.File, err error) error {
			if err != nil {
				return fmt.Errorf("error walking %s: %w", root, err)
			}
			if file.Info().IsDir() {
				return nil
			}
			if !isTemplateFile(file.Path()) {
				return nil
			}
			files[file.Path()] = file
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func isTemplateFile(path string) bool {
	for _, ext := range iconsync.TemplateExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// scanText applies the marker patterns to one file's text, non-overlapping,
// left to right. An occurrence is filled iff the fill token appears anywhere
// in the full matched span, not only inside the class attribute.
func scanText(text string, result *iconsync.ScanResult) {
	for _, pattern := range markerPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			name := match[1]
			filled := strings.Contains(match[0], iconsync.FillToken)
			result.Record(name, filled)
		}
	}
}
