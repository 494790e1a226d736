package adgen

import "fmt"

// Summary is a short model-written digest of a page with one ad.
type Summary struct {
	Text      string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
	Ad        Ad       `json:"ad"`
}

// FallbackSummary builds a summary from the page structure alone. It is used
// when the completion service cannot be reached.
func FallbackSummary(title string, blocks []ContentBlock) Summary {
	firstParagraph := "Content summary not available."
	for _, b := range blocks {
		if b.Tag == TagP {
			firstParagraph = b.Text
			break
		}
	}

	var topics []string
	for _, b := range blocks {
		if lvl := b.Tag.Level(); lvl >= 1 && lvl <= 3 {
			topics = append(topics, b.Text)
		}
	}
	if len(topics) == 0 {
		topics = []string{"Main topic discussed", "Key information provided", "Important insights shared"}
	}
	if len(topics) > 3 {
		topics = topics[:3]
	}

	keyPoints := make([]string, 0, MaxKeyPoints)
	for _, topic := range topics {
		keyPoints = append(keyPoints, ellipsize(topic, 80))
	}
	keyPoints = append(keyPoints, "Additional insights and information provided")
	if len(keyPoints) > MaxKeyPoints {
		keyPoints = keyPoints[:MaxKeyPoints]
	}

	return Summary{
		Text: fmt.Sprintf("This article \"%s\" contains %d sections covering various topics. %s",
			title, len(blocks), ellipsize(firstParagraph, 180)),
		KeyPoints: keyPoints,
		Ad:        NewAd(AdKindBanner, "Discover More Content", "Explore related articles and insights on similar topics.", "Read More"),
	}
}

// ellipsize truncates s to limit runes and appends "..." when it was cut.
func ellipsize(s string, limit int) string {
	if cut := truncateRunes(s, limit); cut != s {
		return cut + "..."
	}
	return s
}
