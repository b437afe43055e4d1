package tui

import (
	"fmt"
	"strings"

	"github.com/megalamo/iconsync/pkg/iconsync"
)

const ruleWidth = 40

// RenderReport formats the scan summary for stdout. With verbose enabled the
// per-icon counts are appended in sorted order.
func RenderReport(result iconsync.ScanResult, rootCount int, verbose bool) string {
	rule := RuleStyle.Render(strings.Repeat("=", ruleWidth))

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(SummaryStyle.Render(fmt.Sprintf(
		"Scanned %d files from %d root path(s), found %d icon instances.",
		result.FilesScanned, rootCount, result.TotalInstances)) + "\n")
	b.WriteString(LabelStyle.Render(fmt.Sprintf(
		"Unfilled icons: %d, Filled icons: %d",
		len(result.Unfilled), len(result.Filled))) + "\n")
	b.WriteString(rule + "\n")

	if len(result.Unfilled) > 0 {
		b.WriteString(LabelStyle.Render("Unfilled: ") +
			UnfilledStyle.Render(strings.Join(result.Unfilled.Sorted(), ", ")) + "\n")
	}
	if len(result.Filled) > 0 {
		b.WriteString(LabelStyle.Render("Filled:   ") +
			FilledStyle.Render(strings.Join(result.Filled.Sorted(), ", ")) + "\n")
	}

	if verbose && len(result.Counts) > 0 {
		b.WriteString("\n" + LabelStyle.Render("Detailed icon counts:") + "\n")
		for _, name := range allNames(result) {
			b.WriteString(CountStyle.Render(fmt.Sprintf("  %s: %d", name, result.Counts[name])) + "\n")
		}
	}

	return b.String()
}

func allNames(result iconsync.ScanResult) []string {
	set := make(iconsync.IconSet, len(result.Counts))
	for name := range result.Counts {
		set.Add(name)
	}
	return set.Sorted()
}
