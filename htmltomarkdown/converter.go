// Package htmltomarkdown renders augmented pages as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/adgen"
)

// Ensure Converter implements adgen.Converter at compile time.
var _ adgen.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", adgen.Errorf(adgen.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}

// ConvertMerged renders merged content as a Markdown document headed by title.
// Ads keep their headline, text and call to action; styling is dropped.
func ConvertMerged(c adgen.Converter, title string, merged []adgen.MergedBlock) (string, error) {
	if len(merged) == 0 {
		return "", adgen.Errorf(adgen.ENOCONTENT, "nothing to convert")
	}
	body, err := c.Convert(adgen.RenderFragment(merged))
	if err != nil {
		return "", err
	}
	return "# " + title + "\n\n" + strings.TrimSpace(body) + "\n", nil
}
