package fonts

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/megalamo/iconsync/pkg/iconsync"
)

// versionPattern matches the cache-busting marker for one variant,
// e.g. material-symbols-rounded-fill.woff2?v=3. The literal dot after the
// basename keeps the unfilled pattern from matching inside the -fill marker.
func versionPattern(variant iconsync.Variant) *regexp.Regexp {
	return regexp.MustCompile(`(` + regexp.QuoteMeta(variant.FontBasename()) + `\.woff2\?v=)(\d+)`)
}

// BumpVersion increments the variant's woff2?v=N marker in the stylesheet at
// cssPath, in place. All occurrences are set to the first marker's value
// plus one. Returns the old and new version.
//
// Returns iconsync.ErrVersionTagNotFound when the stylesheet has no marker
// for the variant; callers treat that as a soft skip.
func BumpVersion(cssPath string, variant iconsync.Variant) (from, to int, err error) {
	content, err := os.ReadFile(cssPath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read stylesheet: %w", err)
	}

	pattern := versionPattern(variant)
	match := pattern.FindSubmatch(content)
	if match == nil {
		return 0, 0, fmt.Errorf("%w for %s icons in %s", iconsync.ErrVersionTagNotFound, variant, cssPath)
	}

	from, err = strconv.Atoi(string(match[2]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed version marker %q: %w", match[2], err)
	}
	to = from + 1

	updated := pattern.ReplaceAll(content, []byte("${1}"+strconv.Itoa(to)))
	if err := os.WriteFile(cssPath, updated, 0o644); err != nil {
		return 0, 0, fmt.Errorf("failed to write stylesheet: %w", err)
	}
	return from, to, nil
}
