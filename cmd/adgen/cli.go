package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/adgen"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Augmenter adgen.Augmenter
	Converter adgen.Converter
	Model     string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIKey       string          `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key. Without it every response uses fallback content."`
	Model        string          `default:"gemini-2.5-flash" env:"ADGEN_MODEL" help:"Gemini model name"`
	Fetcher      string          `enum:"http,browser" default:"http" env:"ADGEN_FETCHER" help:"How pages are fetched (http, browser)"`
	Cleaner      string          `enum:"none,readability,trafilatura" default:"none" env:"ADGEN_CLEANER" help:"Main-content isolation before extraction"`
	FetchTimeout time.Duration   `default:"15s" env:"ADGEN_FETCH_TIMEOUT" help:"Timeout for fetching a page"`
	MaxRedirects int             `default:"5" env:"ADGEN_MAX_REDIRECTS" help:"Redirects followed when fetching"`
	UserAgent    string          `default:"Mozilla/5.0 (compatible; AdGenerator/1.0)" env:"ADGEN_USER_AGENT" help:"User-Agent sent to target sites"`
	RateLimit    float64         `default:"2" env:"ADGEN_RATE_LIMIT" help:"Requests per second per target host (0 disables)"`
	RetryDelays  []time.Duration `default:"2s,4s" env:"ADGEN_RETRY_DELAYS" help:"Backoff delays between overload retries"`
	LogLevel     string          `enum:"debug,info,warn,error" default:"info" env:"ADGEN_LOG_LEVEL" help:"Log level"`
	LogFormat    string          `enum:"text,json" default:"text" env:"ADGEN_LOG_FORMAT" help:"Log format"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API"`
	Preview PreviewCmd `cmd:"" help:"Augment one page and print the result"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host            string        `env:"ADGEN_HOST" help:"Interface to listen on"`
	Port            int           `default:"3000" env:"PORT" help:"Port to listen on"`
	AllowedOrigins  []string      `name:"allowed-origin" default:"http://localhost:3000,https://vishu241.github.io,https://ad-generator-kzt1.onrender.com" env:"ADGEN_ALLOWED_ORIGINS" help:"CORS origins allowed to call the API"`
	RequestTimeout  time.Duration `default:"60s" env:"ADGEN_REQUEST_TIMEOUT" help:"Upper bound for a single API request"`
	ShutdownTimeout time.Duration `default:"10s" help:"Grace period for in-flight requests on shutdown"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL     string `arg:"" help:"Page URL"`
	Format  string `enum:"html,markdown,json" default:"html" short:"f" help:"Output format (html, markdown, json)"`
	Summary bool   `short:"s" help:"Print a summary with one ad instead of the ad preview"`
	Out     string `short:"o" type:"path" help:"Write the result below this directory instead of stdout"`
}
