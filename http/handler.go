package http

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/adgen"
)

type urlRequest struct {
	URL string `json:"url"`
}

type adStats struct {
	OriginalSections int    `json:"originalSections"`
	AdsInserted      int    `json:"adsInserted"`
	AIWorking        string `json:"aiWorking"`
}

type summaryStats struct {
	OriginalSections int    `json:"originalSections"`
	KeyPoints        int    `json:"keyPoints"`
	AIWorking        string `json:"aiWorking"`
}

type processResponse struct {
	Success          bool    `json:"success"`
	Title            string  `json:"title"`
	Stats            adStats `json:"stats"`
	ProcessedContent string  `json:"processedContent"`
	Warning          *string `json:"warning"`
}

type previewResponse struct {
	Success bool                `json:"success"`
	Title   string              `json:"title"`
	Stats   adStats             `json:"stats"`
	Preview []adgen.PreviewItem `json:"preview"`
	Warning *string             `json:"warning"`
}

type summarizeResponse struct {
	Success bool         `json:"success"`
	Title   string       `json:"title"`
	Stats   summaryStats `json:"stats"`
	Summary string       `json:"summary"`
	Warning *string      `json:"warning"`
}

type healthResponse struct {
	Status string `json:"status"`
	AI     string `json:"ai"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "OK", AI: s.model})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	p, ok := s.process(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, processResponse{
		Success:          true,
		Title:            p.Title,
		Stats:            newAdStats(p),
		ProcessedContent: adgen.RenderFragment(p.Merged),
		Warning:          warning(p.Ads.Warning),
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	p, ok := s.process(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, previewResponse{
		Success: true,
		Title:   p.Title,
		Stats:   newAdStats(p),
		Preview: adgen.PreviewItems(p.Merged),
		Warning: warning(p.Ads.Warning),
	})
}

// handlePreviewPage renders the preview as a standalone HTML page so it can
// be opened directly in a browser.
func (s *Server) handlePreviewPage(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		s.writeHTML(w, http.StatusBadRequest, adgen.RenderErrorPage("URL Required",
			"Please provide a URL parameter: <code>/api/preview?url=https://example.com</code>"))
		return
	}

	p, err := s.augmenter.Process(r.Context(), target)
	if err != nil {
		heading := "Scraping Failed"
		status := ErrorStatusCode(err)
		if status == http.StatusInternalServerError {
			heading = "Server Error"
			s.logger.Error("preview failed", "request_id", RequestID(r.Context()), "url", target, "err", err)
		}
		s.writeHTML(w, status, adgen.RenderErrorPage(heading, "Error: "+html.EscapeString(adgen.ErrorMessage(err))))
		return
	}

	body := adgen.RenderPreview(p.Title, p.Merged)
	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64String(body))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	s.writeHTML(w, http.StatusOK, body)
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	target, ok := s.decodeURL(w, r)
	if !ok {
		return
	}

	sum, err := s.augmenter.Summarize(r.Context(), target)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, summarizeResponse{
		Success: true,
		Title:   sum.Title,
		Stats: summaryStats{
			OriginalSections: len(sum.Blocks),
			KeyPoints:        len(sum.Summary.Summary.KeyPoints),
			AIWorking:        yesNo(sum.Summary.AIWorking),
		},
		Summary: adgen.RenderSummary(sum.Summary.Summary),
		Warning: warning(sum.Summary.Warning),
	})
}

// process decodes the request URL and runs the ad pipeline. It writes the
// error response itself and reports whether the caller should continue.
func (s *Server) process(w http.ResponseWriter, r *http.Request) (*adgen.Processed, bool) {
	target, ok := s.decodeURL(w, r)
	if !ok {
		return nil, false
	}
	p, err := s.augmenter.Process(r.Context(), target)
	if err != nil {
		s.Error(w, r, err)
		return nil, false
	}
	return p, true
}

// decodeURL reads {"url": ...} from the body. A missing, empty or malformed
// body is reported as "URL required".
func (s *Server) decodeURL(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req urlRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil || req.URL == "" {
		s.Error(w, r, adgen.Errorf(adgen.EINVALID, "URL required"))
		return "", false
	}
	return req.URL, true
}

func (s *Server) writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newAdStats(p *adgen.Processed) adStats {
	return adStats{
		OriginalSections: len(p.Blocks),
		AdsInserted:      adgen.CountAds(p.Merged),
		AIWorking:        yesNo(p.Ads.AIWorking),
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// warning returns nil for an empty message so it encodes as JSON null.
func warning(msg string) *string {
	if msg == "" {
		return nil
	}
	return &msg
}
