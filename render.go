package adgen

import (
	"fmt"
	"html"
	"strings"
)

// PreviewItem is one entry of the structured preview list.
type PreviewItem struct {
	Type string `json:"type"`
	HTML string `json:"html"`
}

// Preview item types.
const (
	PreviewContent = "content"
	PreviewAd      = "ad"
)

// RenderBlock wraps a content block in its structural tag.
func RenderBlock(b ContentBlock) string {
	tag := b.Tag
	if tag == "" {
		tag = TagP
	}
	return "<" + string(tag) + ">" + html.EscapeString(b.Text) + "</" + string(tag) + ">"
}

// RenderPreview renders merged content as a standalone HTML document.
// Output depends only on its inputs.
func RenderPreview(title string, merged []MergedBlock) string {
	parts := make([]string, 0, len(merged))
	for _, m := range merged {
		if m.IsAd {
			parts = append(parts, m.Markup)
		} else {
			parts = append(parts, RenderBlock(m.Block))
		}
	}
	escaped := html.EscapeString(title)
	return fmt.Sprintf(previewTemplate, escaped, escaped, strings.Join(parts, "\n"))
}

const previewTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>%s - Preview</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; line-height: 1.6; }
        h1, h2, h3 { color: #333; margin-top: 2em; }
        p { margin-bottom: 1em; }
    </style>
</head>
<body>
    <div style="background: #f0f8ff; padding: 20px; border-radius: 8px; margin-bottom: 30px;">
        <h2>Preview: %s</h2>
        <p><em>Content with AI-generated ads</em></p>
    </div>
    %s
</body>
</html>`

// RenderFragment renders merged content as an HTML fragment with ads
// wrapped for highlighting.
func RenderFragment(merged []MergedBlock) string {
	parts := make([]string, 0, len(merged))
	for _, m := range merged {
		if m.IsAd {
			parts = append(parts, `<div class="ad-highlight">`+m.Markup+`</div>`)
		} else {
			parts = append(parts, RenderBlock(m.Block))
		}
	}
	return strings.Join(parts, "\n")
}

// PreviewItems returns merged content as a structured list.
func PreviewItems(merged []MergedBlock) []PreviewItem {
	items := make([]PreviewItem, 0, len(merged))
	for _, m := range merged {
		if m.IsAd {
			items = append(items, PreviewItem{Type: PreviewAd, HTML: m.Markup})
		} else {
			items = append(items, PreviewItem{Type: PreviewContent, HTML: RenderBlock(m.Block)})
		}
	}
	return items
}

// RenderSummary renders a summary, its key points and its ad as an HTML
// fragment.
func RenderSummary(s Summary) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"summary-content\">\n")
	sb.WriteString("<h4>📝 Summary</h4>\n")
	fmt.Fprintf(&sb, "<p>%s</p>\n", html.EscapeString(s.Text))
	if len(s.KeyPoints) > 0 {
		sb.WriteString("<h4>🔑 Key Points</h4>\n<ul>")
		for _, point := range s.KeyPoints {
			fmt.Fprintf(&sb, "<li>%s</li>", html.EscapeString(point))
		}
		sb.WriteString("</ul>\n")
	}
	fmt.Fprintf(&sb, "<div class=\"ad-highlight\">%s</div>\n", s.Ad.Markup())
	sb.WriteString("</div>")
	return sb.String()
}

// RenderErrorPage renders a minimal HTML page describing a failure.
// The heading is escaped; message is inserted as HTML.
func RenderErrorPage(heading, message string) string {
	return fmt.Sprintf(errorTemplate, html.EscapeString(heading), message)
}

const errorTemplate = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Error</title></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
  <h2>❌ %s</h2>
  <p>%s</p>
</body></html>`
