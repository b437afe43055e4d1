package iconsync

// Exit codes for semantic error classification.
// The pipeline deliberately keeps these coarse:
//   - 0: Success (including an empty scan)
//   - 1: Any failure (usage error, missing directory, failed sync)
//   - 3: Internal panic (unexpected crash)
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitPanic   = 3
)

const (
	// DefaultScanRoot is the directory scanned when no roots are given.
	DefaultScanRoot = "assets"

	// DefaultStylesheetPath is the stylesheet whose cache-busting version
	// markers are bumped after a font update.
	DefaultStylesheetPath = "assets/css/tailwind-style_source.css"

	// DefaultFontsDir is where downloaded woff2 files are written.
	DefaultFontsDir = "assets/fonts"

	// DefaultIconsDir holds the inline SVG icons processed by the rewrite command.
	DefaultIconsDir = "assets/icons"

	// DefaultViewsDir holds the Jet templates processed by the rewrite command.
	DefaultViewsDir = "assets/views"
)

const (
	// ClassToken is the class-attribute token that marks an icon tag.
	ClassToken = "material-symbols-rounded"

	// FillToken marks the filled variant. Classification checks for this
	// substring anywhere in the matched tag, not only inside the class
	// attribute; the broad check is load-bearing and must not be narrowed.
	FillToken = "material-symbols-rounded-fill"
)

// TemplateExtensions are the template file suffixes the scanner recognizes.
var TemplateExtensions = []string{".jet.html", ".templ"}

const (
	// StylesheetEndpoint is the Google Fonts CSS2 endpoint template. The first
	// verb takes the fill flag ("0" or "1"), the second the sorted
	// comma-joined icon names. Sorting keeps the request cacheable.
	StylesheetEndpoint = "https://fonts.googleapis.com/css2?family=Material+Symbols+Rounded:opsz,FILL@20..48,%s&icon_names=%s&display=block"

	// PinnedUserAgent is a browser user agent the CSS endpoint is queried
	// with. Google varies the response format by client signature; without a
	// browser signature the response carries no woff2 source declaration.
	PinnedUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
)

const (
	// ProbeEndpoint is the pximg thumbnail URL template; the verb takes the
	// candidate resize parameter (e.g. "540x540").
	ProbeEndpoint = "https://i.pximg.net/c/%s/user-profile/img/2017/03/23/23/55/24/12309801_426f94bac51c1892324deb91e7caa4e6_50.png"

	// ProbeReferer is required by pximg; requests without it are rejected.
	ProbeReferer = "https://www.pixiv.net/"

	// DefaultProbeSize is the resize parameter tried when none is given.
	DefaultProbeSize = "1200x1200"
)
