package iconsync

import (
	"errors"
	"fmt"
	"sort"
)

// Variant selects the rendering style of an icon glyph.
type Variant int

const (
	// VariantUnfilled is the default outline rendering.
	VariantUnfilled Variant = iota
	// VariantFilled is the solid rendering.
	VariantFilled
)

// Variants lists both variants in processing order: unfilled first, then
// filled. Failures in one must not block the other.
var Variants = []Variant{VariantUnfilled, VariantFilled}

func (v Variant) String() string {
	if v == VariantFilled {
		return "filled"
	}
	return "unfilled"
}

// FillFlag returns the FILL axis value used in the stylesheet request.
func (v Variant) FillFlag() string {
	if v == VariantFilled {
		return "1"
	}
	return "0"
}

// FontBasename returns the local font file stem for the variant,
// e.g. "material-symbols-rounded-fill".
func (v Variant) FontBasename() string {
	if v == VariantFilled {
		return ClassToken + "-fill"
	}
	return ClassToken
}

// FontFileName returns the local woff2 file name for the variant.
func (v Variant) FontFileName() string {
	return v.FontBasename() + ".woff2"
}

// IconSet is an unordered set of icon identifiers.
type IconSet map[string]struct{}

// NewIconSet creates a set containing the given names.
func NewIconSet(names ...string) IconSet {
	s := make(IconSet, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts a name; idempotent.
func (s IconSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether name is in the set.
func (s IconSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexicographic order for deterministic output
// and cacheable remote requests.
func (s IconSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScanResult aggregates everything a template scan produced.
//
// Invariants (checked by Validate):
//   - TotalInstances equals the sum of Counts
//   - every counted name is in Unfilled or Filled, and vice versa
type ScanResult struct {
	// Unfilled holds names seen at least once in an unfilled icon tag.
	Unfilled IconSet

	// Filled holds names seen at least once in a fill-flagged icon tag.
	// A name may appear in both sets across different occurrences.
	Filled IconSet

	// Counts is the cumulative per-name occurrence count across all files.
	Counts map[string]int

	// FilesScanned is the number of distinct template files found,
	// including files that later failed to decode.
	FilesScanned int

	// TotalInstances is the number of icon tag occurrences recorded.
	TotalInstances int
}

// NewScanResult returns an empty, ready-to-use result.
func NewScanResult() ScanResult {
	return ScanResult{
		Unfilled: make(IconSet),
		Filled:   make(IconSet),
		Counts:   make(map[string]int),
	}
}

// Record registers one icon tag occurrence. Set membership is idempotent;
// counts are cumulative.
func (r *ScanResult) Record(name string, filled bool) {
	r.Counts[name]++
	r.TotalInstances++
	if filled {
		r.Filled.Add(name)
	} else {
		r.Unfilled.Add(name)
	}
}

// Set returns the classification set for the given variant.
func (r *ScanResult) Set(v Variant) IconSet {
	if v == VariantFilled {
		return r.Filled
	}
	return r.Unfilled
}

// Validate checks the ScanResult invariants.
// It returns a multi-error if multiple violations occur.
func (r *ScanResult) Validate() error {
	var errs []error

	sum := 0
	for _, n := range r.Counts {
		sum += n
	}
	if sum != r.TotalInstances {
		errs = append(errs, fmt.Errorf("TotalInstances is %d but counts sum to %d", r.TotalInstances, sum))
	}

	for name, n := range r.Counts {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("icon %q has non-positive count %d", name, n))
		}
		if !r.Unfilled.Contains(name) && !r.Filled.Contains(name) {
			errs = append(errs, fmt.Errorf("icon %q is counted but classified in neither set", name))
		}
	}
	for _, set := range []IconSet{r.Unfilled, r.Filled} {
		for name := range set {
			if r.Counts[name] == 0 {
				errs = append(errs, fmt.Errorf("icon %q is classified but has no count", name))
			}
		}
	}

	return errors.Join(errs...)
}

// SyncConfig contains the parameters of a font sync run.
type SyncConfig struct {
	// FontsDir is the destination directory for woff2 files.
	FontsDir string

	// StylesheetPath is the stylesheet whose version markers are bumped
	// after a font update. Empty disables bumping.
	StylesheetPath string

	// UserAgent overrides the pinned browser user agent when non-empty.
	UserAgent string
}

// Validate checks if the SyncConfig has all required fields.
func (c *SyncConfig) Validate() error {
	if c.FontsDir == "" {
		return fmt.Errorf("FontsDir is required: %w", ErrUsage)
	}
	return nil
}

// RewriteConfig contains the parameters of an icon-class rewrite run.
type RewriteConfig struct {
	// IconsDir holds the *.svg files whose class attributes are migrated.
	IconsDir string

	// ViewsDir is walked recursively for *.jet.html templates whose
	// icon(...) call sites are updated.
	ViewsDir string
}

// Validate checks if the RewriteConfig has all required fields.
func (c *RewriteConfig) Validate() error {
	var errs []error
	if c.IconsDir == "" {
		errs = append(errs, fmt.Errorf("IconsDir is required: %w", ErrUsage))
	}
	if c.ViewsDir == "" {
		errs = append(errs, fmt.Errorf("ViewsDir is required: %w", ErrUsage))
	}
	return errors.Join(errs...)
}
