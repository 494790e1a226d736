package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/augment"
	"github.com/fwojciec/adgen/gemini"
	"github.com/fwojciec/adgen/goquery"
	"github.com/fwojciec/adgen/htmltomarkdown"
	adgenhttp "github.com/fwojciec/adgen/http"
	"github.com/fwojciec/adgen/readability"
	"github.com/fwojciec/adgen/rod"
	adgenslog "github.com/fwojciec/adgen/slog"
	"github.com/fwojciec/adgen/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Env file loaded before flags are parsed. Missing files are ignored.
	EnvFile string

	// Augmenter replaces the wired pipeline when set. Used for end-to-end tests.
	Augmenter adgen.Augmenter

	fetcher adgen.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	envFile := os.Getenv("ADGEN_ENV_FILE")
	if envFile == "" {
		envFile = "config.env"
	}
	return &Main{EnvFile: envFile}
}

// Close releases resources opened by Run.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadEnvFile(m.EnvFile); err != nil {
		return fmt.Errorf("loading %s: %w", m.EnvFile, err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("adgen"),
		kong.Description("Insert AI-generated contextual ads into web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'adgen --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.LogLevel, cli.LogFormat)
	deps.Model = cli.Model
	deps.Converter = htmltomarkdown.NewConverter()

	if m.Augmenter != nil {
		deps.Augmenter = m.Augmenter
	} else {
		aug, err := m.wire(ctx, cli, deps.Logger, stderr)
		if err != nil {
			return err
		}
		deps.Augmenter = aug
	}
	defer m.Close()

	return kongCtx.Run(deps)
}

// wire builds the fetch, extract and generate pipeline from cli settings.
func (m *Main) wire(ctx context.Context, cli *CLI, logger *slog.Logger, stderr io.Writer) (adgen.Augmenter, error) {
	limiter := augment.NewDomainLimiter(cli.RateLimit, 1)

	switch cli.Fetcher {
	case "browser":
		f, err := rod.NewFetcher(
			rod.WithTimeout(cli.FetchTimeout),
			rod.WithUserAgent(cli.UserAgent),
			rod.WithLimiter(limiter),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --fetcher=browser")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		m.fetcher = f
	default:
		m.fetcher = adgenhttp.NewFetcher(
			adgenhttp.WithTimeout(cli.FetchTimeout),
			adgenhttp.WithMaxRedirects(cli.MaxRedirects),
			adgenhttp.WithUserAgent(cli.UserAgent),
			adgenhttp.WithLimiter(limiter),
		)
	}

	var opts []goquery.Option
	switch cli.Cleaner {
	case "readability":
		opts = append(opts, goquery.WithCleaner(readability.NewCleaner()))
	case "trafilatura":
		opts = append(opts, goquery.WithCleaner(trafilatura.NewCleaner()))
	}

	completer, err := newCompleter(ctx, cli, logger)
	if err != nil {
		_ = m.Close()
		return nil, err
	}

	return &augment.Service{
		Fetcher:   adgenslog.NewLoggingFetcher(m.fetcher, logger),
		Extractor: adgenslog.NewLoggingExtractor(goquery.NewExtractor(opts...), logger),
		Generator: &augment.Generator{
			Completer:   completer,
			RetryDelays: cli.RetryDelays,
			Logger:      logger,
		},
	}, nil
}

// newCompleter connects to Gemini. Without an API key it returns nil and
// every generation falls back to default content.
func newCompleter(ctx context.Context, cli *CLI, logger *slog.Logger) (adgen.Completer, error) {
	if cli.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; using fallback content. Get a key at https://aistudio.google.com/apikey")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cli.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	var counter adgen.TokenCounter
	if tc, err := gemini.NewTokenCounter(cli.Model); err != nil {
		logger.Debug("token counting disabled", "model", cli.Model, "err", err)
	} else {
		counter = tc
	}

	return adgenslog.NewLoggingCompleter(gemini.NewCompleter(client, cli.Model), counter, logger), nil
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(level))
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
