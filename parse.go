package adgen

import (
	"regexp"
	"strings"
)

// MaxKeyPoints caps the number of key points kept from a summary.
const MaxKeyPoints = 4

// DefaultSummaryText is used when a response has no SUMMARY: section.
const DefaultSummaryText = "AI-generated summary not available."

var (
	adMarkerRe = regexp.MustCompile(`AD \d+:`)
	headlineRe = regexp.MustCompile(`(?m)^[ \t]*Headline:[ \t]*(.+)$`)
	bodyRe     = regexp.MustCompile(`(?m)^[ \t]*Text:[ \t]*(.+)$`)
	ctaRe      = regexp.MustCompile(`(?m)^[ \t]*CTA:[ \t]*(.+)$`)
)

// Section labels of a summary response.
const (
	labelSummary   = "SUMMARY:"
	labelKeyPoints = "KEY POINTS:"
	labelAd        = "ADVERTISEMENT:"
)

// ParseAds extracts ads from a model response of the form
//
//	AD 1:
//	Headline: ...
//	Text: ...
//	CTA: ...
//
// Segments missing any field are skipped. Kinds alternate banner, inline by
// segment position. If nothing parses, DefaultAds is returned.
func ParseAds(response string) []Ad {
	var ads []Ad
	for i, segment := range adMarkerRe.Split(response, -1) {
		if i == 0 {
			continue
		}
		kind := AdKindInline
		if i%2 == 1 {
			kind = AdKindBanner
		}
		ad, ok := parseAdFields(segment, kind)
		if !ok {
			continue
		}
		ads = append(ads, ad)
	}

	if len(ads) == 0 {
		return DefaultAds()
	}
	return ads
}

// ParseSummary extracts the SUMMARY:, KEY POINTS: and ADVERTISEMENT: sections
// of a model response. Each section degrades independently to its default.
func ParseSummary(response string) Summary {
	s := Summary{
		Text:      DefaultSummaryText,
		KeyPoints: []string{},
		Ad:        defaultSummaryAd(),
	}

	if text, ok := section(response, labelSummary, labelKeyPoints, labelAd); ok {
		s.Text = strings.TrimSpace(text)
	}

	if text, ok := section(response, labelKeyPoints, labelAd); ok {
		s.KeyPoints = parseKeyPoints(text)
	}

	if text, ok := section(response, labelAd); ok {
		if ad, ok := parseAdFields(text, AdKindBanner); ok {
			s.Ad = ad
		}
	}

	return s
}

// parseAdFields returns the first Headline:, Text: and CTA: values in text.
// It reports false when any of them is missing or blank.
func parseAdFields(text string, kind AdKind) (Ad, bool) {
	headline := firstMatch(headlineRe, text)
	body := firstMatch(bodyRe, text)
	cta := firstMatch(ctaRe, text)
	if headline == "" || body == "" || cta == "" {
		return Ad{}, false
	}
	return NewAd(kind, headline, body, cta), true
}

func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// section returns the text after label up to the earliest following stop
// label, or to the end of response when no stop label follows.
func section(response, label string, stops ...string) (string, bool) {
	start := strings.Index(response, label)
	if start < 0 {
		return "", false
	}
	rest := response[start+len(label):]

	end := len(rest)
	for _, stop := range stops {
		if i := strings.Index(rest, stop); i >= 0 && i < end {
			end = i
		}
	}
	return rest[:end], true
}

var bulletMarkers = []string{"•", "-", "*"}

func parseKeyPoints(text string) []string {
	points := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, marker := range bulletMarkers {
			if !strings.HasPrefix(line, marker) {
				continue
			}
			point := strings.TrimSpace(strings.TrimPrefix(line, marker))
			if point != "" && len(points) < MaxKeyPoints {
				points = append(points, point)
			}
			break
		}
	}
	return points
}
