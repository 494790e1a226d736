package adgen

// Extraction limits shared by extractor implementations.
const (
	// MinTextLength is the trimmed length a block must exceed to be kept.
	MinTextLength = 20

	// MaxBlocks bounds prompt size and rendering cost.
	MaxBlocks = 20

	// DefaultTitle is used when a page has neither <title> nor <h1>.
	DefaultTitle = "Article"
)

// ExtractResult holds the readable content of an HTML page.
type ExtractResult struct {
	// Title is the document title, first h1, or DefaultTitle.
	Title string

	// Blocks are headings and paragraphs in document order.
	Blocks []ContentBlock
}

// Extractor turns raw HTML into ordered content blocks.
type Extractor interface {
	// Extract processes raw HTML and returns its title and text blocks.
	// Returns ENOCONTENT if no block passes the length threshold.
	Extract(html string) (*ExtractResult, error)
}

// CleanResult holds the article body isolated from a page.
type CleanResult struct {
	// Title is the page title from metadata. May be empty.
	Title string

	// ContentHTML is the main content with boilerplate removed.
	ContentHTML string
}

// Cleaner isolates the main article from surrounding boilerplate before
// block extraction runs.
type Cleaner interface {
	Clean(html string) (*CleanResult, error)
}
