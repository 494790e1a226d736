package adgen

import "strings"

// Tag is the structural HTML tag a content block was extracted from.
type Tag string

// Tags recognized by extractors.
const (
	TagH1 Tag = "h1"
	TagH2 Tag = "h2"
	TagH3 Tag = "h3"
	TagH4 Tag = "h4"
	TagH5 Tag = "h5"
	TagH6 Tag = "h6"
	TagP  Tag = "p"
)

// Level returns the heading level of t, 1 for h1 through 6 for h6, and 0
// for paragraphs and unknown tags.
func (t Tag) Level() int {
	switch t {
	case TagH1, TagH2, TagH3, TagH4, TagH5, TagH6:
		return int(t[1] - '0')
	}
	return 0
}

// ContentBlock is one heading or paragraph extracted from a page.
type ContentBlock struct {
	Tag       Tag    `json:"type"`
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
}

// NewContentBlock trims text and computes its word count.
func NewContentBlock(tag Tag, text string) ContentBlock {
	text = strings.TrimSpace(text)
	return ContentBlock{
		Tag:       tag,
		Text:      text,
		WordCount: len(strings.Fields(text)),
	}
}

// JoinText concatenates block texts with single spaces and truncates the
// result to at most limit runes. A non-positive limit disables truncation.
func JoinText(blocks []ContentBlock, limit int) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.Text)
	}
	return truncateRunes(strings.Join(parts, " "), limit)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
