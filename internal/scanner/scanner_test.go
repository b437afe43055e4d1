package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megalamo/iconsync/internal/files/filesystem"
	"github.com/megalamo/iconsync/internal/logging"
	"github.com/megalamo/iconsync/pkg/iconsync"
)

func newTestScanner() (*Scanner, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/project")
	return NewWithFS(logging.NewNullLogger(), fs), fs
}

func TestNewWithFS_NilArgs(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/")

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil logger", func() { NewWithFS(nil, fs) }},
		{"nil filesystem", func() { NewWithFS(logging.NewNullLogger(), nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestScanRoots_ClassifiesVariants(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("assets/views/index.jet.html",
		`<span class="material-symbols-rounded">settings</span>
		 <div class="material-symbols-rounded-fill-20">settings</div>`)

	result, err := s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)

	assert.Equal(t, []string{"settings"}, result.Unfilled.Sorted())
	assert.Equal(t, []string{"settings"}, result.Filled.Sorted())
	assert.Equal(t, 2, result.Counts["settings"])
	assert.Equal(t, 2, result.TotalInstances)
	assert.Equal(t, 1, result.FilesScanned)
	require.NoError(t, result.Validate())
}

func TestScanRoots_MismatchedTagsRejected(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("assets/a.templ",
		`<span class="material-symbols-rounded">close</div>
		 <div class="material-symbols-rounded">home</span>`)

	result, err := s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalInstances)
	assert.Empty(t, result.Counts)
	assert.Equal(t, 1, result.FilesScanned)
}

func TestScanRoots_NumericSuffixAndExtraClasses(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("assets/a.jet.html",
		`<span class="mr-1 material-symbols-rounded-24 text-lg">download</span>
		 <span class="material-symbols-rounded-fill">favorite</span>`)

	result, err := s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)

	assert.True(t, result.Unfilled.Contains("download"))
	assert.True(t, result.Filled.Contains("favorite"))
	assert.False(t, result.Unfilled.Contains("favorite"))
	assert.Equal(t, 2, result.TotalInstances)
}

func TestScanRoots_FillTokenAnywhereInMatch(t *testing.T) {
	// The fill check looks at the whole matched tag, not just the token the
	// class pattern captured. A tag carrying both the bare token and a
	// fill-modified token classifies as filled.
	s, fs := newTestScanner()
	fs.AddFile("assets/a.templ",
		`<span class="material-symbols-rounded material-symbols-rounded-fill-20">star</span>`)

	result, err := s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)

	assert.True(t, result.Filled.Contains("star"))
	assert.False(t, result.Unfilled.Contains("star"))
}

func TestScanRoots_InnerTextMustBeWordCharacters(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("assets/a.templ",
		`<span class="material-symbols-rounded">two words</span>
		 <span class="material-symbols-rounded">arrow_back</span>`)

	result, err := s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)

	assert.Equal(t, []string{"arrow_back"}, result.Unfilled.Sorted())
	assert.Equal(t, 1, result.TotalInstances)
}

func TestScanRoots_IgnoresOtherExtensions(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("assets/readme.html", `<span class="material-symbols-rounded">skip</span>`)
	fs.AddFile("assets/page.jet.html", `<span class="material-symbols-rounded">keep</span>`)

	result, err := s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, []string{"keep"}, result.Unfilled.Sorted())
}

func TestScanRoots_OverlappingRootsDeduplicated(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("assets/views/a.jet.html", `<span class="material-symbols-rounded">search</span>`)

	result, err := s.ScanRoots([]string{"/project/assets", "/project/assets/views"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 1, result.Counts["search"])
	assert.Equal(t, 1, result.TotalInstances)
}

func TestScanRoots_Deterministic(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("assets/a.templ", `<span class="material-symbols-rounded">close</span>`)
	fs.AddFile("assets/b.templ", `<div class="material-symbols-rounded-fill">close</div>`)
	fs.AddFile("assets/c.jet.html", `<span class="material-symbols-rounded">menu</span>`)

	first, err := s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)
	second, err := s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScanRoots_SkipsInvalidUTF8(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("assets/bad.templ", "\xff\xfe<span class=\"material-symbols-rounded\">x</span>")
	fs.AddFile("assets/good.templ", `<span class="material-symbols-rounded">home</span>`)

	result, err := s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)

	// The undecodable file is skipped but still counted as scanned
	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, []string{"home"}, result.Unfilled.Sorted())
	assert.Equal(t, 1, result.TotalInstances)
}

func TestScanRoots_MissingRootIsFatal(t *testing.T) {
	s, _ := newTestScanner()

	_, err := s.ScanRoots([]string{"/project/nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, iconsync.ErrDirectoryNotFound)
}

func TestScanRoots_EmptyInputs(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("assets/plain.jet.html", "<p>no icons here</p>")

	result, err := s.ScanRoots(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.FilesScanned)
	assert.Equal(t, 0, result.TotalInstances)

	result, err = s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 0, result.TotalInstances)
	require.NoError(t, result.Validate())
}

func TestScanText_CountsAccumulateAcrossFiles(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("assets/a.templ", `<span class="material-symbols-rounded">close</span>`)
	fs.AddFile("assets/b.templ", `<span class="material-symbols-rounded">close</span>`)

	result, err := s.ScanRoots([]string{"/project/assets"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Counts["close"])
	assert.Equal(t, []string{"close"}, result.Unfilled.Sorted())
	require.NoError(t, result.Validate())
}
