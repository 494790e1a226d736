package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/fs"
	"github.com/fwojciec/adgen/htmltomarkdown"
)

var extensions = map[string]string{
	"html":     ".html",
	"markdown": ".md",
	"json":     ".json",
}

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	var out string
	var err error
	if c.Summary {
		out, err = c.renderSummary(deps)
	} else {
		out, err = c.renderPreview(deps)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", adgen.ErrorMessage(err))
		return err
	}

	if c.Out == "" {
		fmt.Fprint(deps.Stdout, out)
		return nil
	}

	path, err := fs.NewWriter(c.Out).Write(c.URL, extensions[c.Format], []byte(out))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", adgen.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}

func (c *PreviewCmd) renderPreview(deps *Dependencies) (string, error) {
	p, err := deps.Augmenter.Process(deps.Ctx, c.URL)
	if err != nil {
		return "", err
	}
	if p.Ads.Warning != "" {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", p.Ads.Warning)
	}

	switch c.Format {
	case "markdown":
		return htmltomarkdown.ConvertMerged(deps.Converter, p.Title, p.Merged)
	case "json":
		return encodeJSON(adgen.PreviewItems(p.Merged))
	default:
		return adgen.RenderPreview(p.Title, p.Merged) + "\n", nil
	}
}

func (c *PreviewCmd) renderSummary(deps *Dependencies) (string, error) {
	s, err := deps.Augmenter.Summarize(deps.Ctx, c.URL)
	if err != nil {
		return "", err
	}
	if s.Summary.Warning != "" {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", s.Summary.Warning)
	}

	switch c.Format {
	case "markdown":
		md, err := deps.Converter.Convert(adgen.RenderSummary(s.Summary.Summary))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("# %s\n\n%s\n", s.Title, md), nil
	case "json":
		return encodeJSON(s.Summary.Summary)
	default:
		return adgen.RenderSummary(s.Summary.Summary) + "\n", nil
	}
}

func encodeJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
