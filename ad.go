package adgen

import (
	"fmt"
	"html"
)

// AdKind is the placement style of an advertisement.
type AdKind string

// Ad kinds alternate as ads are parsed from a model response.
const (
	AdKindBanner AdKind = "banner"
	AdKindInline AdKind = "inline"
)

// Ad is one contextual advertisement.
type Ad struct {
	Kind         AdKind `json:"type"`
	Headline     string `json:"headline"`
	Body         string `json:"text"`
	CallToAction string `json:"cta"`
}

// NewAd returns an ad with the given fields.
func NewAd(kind AdKind, headline, body, cta string) Ad {
	return Ad{
		Kind:         kind,
		Headline:     headline,
		Body:         body,
		CallToAction: cta,
	}
}

// Markup renders the ad through a fixed template. It is derived from the
// other fields on every call so it can never drift from them.
func (a Ad) Markup() string {
	return fmt.Sprintf(adTemplate,
		html.EscapeString(a.Headline),
		html.EscapeString(a.Body),
		html.EscapeString(a.CallToAction),
	)
}

const adTemplate = `<div style="margin: 20px 0; padding: 0;">
    <h4 style="margin: 0 0 8px 0; color: #1e293b; font-size: 18px;">%s</h4>
    <p style="margin: 0 0 8px 0; color: #374151; line-height: 1.5;">%s</p>
    <p style="margin: 0; color: #667eea; font-weight: 500;">%s</p>
    <div style="font-size: 11px; margin-top: 5px; color: #9ca3af;">Sponsored</div>
  </div>`

// DefaultAds returns the ads used when a model response yields none.
func DefaultAds() []Ad {
	return []Ad{
		NewAd(AdKindBanner, "Discover Amazing Products", "Find what you need with our curated selection.", "Shop Now"),
	}
}

// defaultSummaryAd is substituted when the ADVERTISEMENT section is unusable.
func defaultSummaryAd() Ad {
	return NewAd(AdKindBanner, "Discover More Content", "Explore related articles and insights.", "Read More")
}
