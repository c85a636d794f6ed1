package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobhunter"
	"github.com/fwojciec/jobhunter/bluemonday"
	jhfiber "github.com/fwojciec/jobhunter/fiber"
	"github.com/fwojciec/jobhunter/gemini"
	"github.com/fwojciec/jobhunter/goquery"
	"github.com/fwojciec/jobhunter/htmltomarkdown"
	jhhttp "github.com/fwojciec/jobhunter/http"
	"github.com/fwojciec/jobhunter/readability"
	"github.com/fwojciec/jobhunter/redis"
	"github.com/fwojciec/jobhunter/rod"
	"github.com/fwojciec/jobhunter/scan"
	jhslog "github.com/fwojciec/jobhunter/slog"
	"github.com/fwojciec/jobhunter/sqlite"
	"github.com/fwojciec/jobhunter/store"
	"github.com/fwojciec/jobhunter/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Redis URL. When set, jobs and settings are kept in Redis instead of
	// the SQLite database.
	RedisURL string

	// Key used when none is stored in settings.
	FallbackAPIKey string

	// Key-value storage behind Store.
	KV jobhunter.KV

	// Store holds jobs, settings and session state.
	Store *store.Store
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:         defaultDBPath(),
		RedisURL:       os.Getenv("JOBHUNTER_REDIS_URL"),
		FallbackAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.KV != nil {
		return m.KV.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobhunter"),
		kong.Description("Extract job postings into a local job list"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobhunter --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)

	if err := m.openStore(ctx); err != nil {
		if m.RedisURL != "" {
			fmt.Fprintln(stderr, "Hint: Check JOBHUNTER_REDIS_URL or unset it to use SQLite")
		} else {
			fmt.Fprintln(stderr, "Hint: Set JOBHUNTER_DB to use a different database path")
		}
		return err
	}
	defer m.Close()

	jobs := jhslog.NewLoggingJobService(m.Store, deps.Logger)
	deps.Jobs = jobs
	deps.Settings = m.Store
	deps.State = m.Store

	exec := gemini.NewExecutor()
	exec.Logf = logf(deps.Logger)
	deps.Executor = exec

	processor := &scan.Processor{
		Settings: m.Store,
		Analyzer: jhslog.NewLoggingAnalyzer(gemini.NewAnalyzer(exec), deps.Logger),
		Jobs:     jobs,
		State:    m.Store,
	}
	deps.Processor = processor

	// Page fetching is wired only for the commands that load pages.
	var fetch FetchFlags
	switch cmd {
	case "scan":
		fetch = cli.Scan.FetchFlags
	case "extract":
		fetch = cli.Extract.FetchFlags
	case "serve":
		fetch = cli.Serve.FetchFlags
	default:
		return kongCtx.Run(deps)
	}

	fetcher, err := newFetcher(fetch.Browser)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer fetcher.Close()

	deps.Fetcher = jhslog.NewLoggingFetcher(fetcher, deps.Logger)
	deps.Extractor = jhslog.NewLoggingContentExtractor(&scan.ContentExtractor{
		Extractor: newExtractor(fetch.Reader),
		Sanitizer: bluemonday.NewSanitizer(),
		Converter: htmltomarkdown.NewConverter(),
	}, deps.Logger)
	deps.Scanner = &scan.Scanner{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Processor:   processor,
		RateLimiter: scan.NewDomainLimiter(1.0),
		Logf:        logf(deps.Logger),
	}

	if cmd == "extract" {
		tc, err := gemini.NewTokenCounter(gemini.TokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.TokenCounter = tc
	}

	if cmd == "serve" {
		srv := jhfiber.NewServer()
		srv.Processor = processor
		srv.Scanner = deps.Scanner
		srv.JobService = jobs
		srv.SettingsService = m.Store
		srv.StateService = m.Store
		srv.Logger = deps.Logger
		deps.Server = srv
	}

	return kongCtx.Run(deps)
}

// openStore connects the configured KV backend and builds the Store on it.
func (m *Main) openStore(ctx context.Context) error {
	if m.RedisURL != "" {
		kv, err := redis.Open(ctx, m.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		m.KV = kv
	} else {
		db := sqlite.NewDB(m.DBPath)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		m.KV = sqlite.NewKV(db)
	}

	m.Store = store.New(m.KV)
	m.Store.FallbackAPIKey = m.FallbackAPIKey
	return nil
}

func newFetcher(browser bool) (jobhunter.Fetcher, error) {
	if browser {
		return rod.NewFetcher()
	}
	return jhhttp.NewFetcher(), nil
}

func newExtractor(reader string) jobhunter.Extractor {
	switch reader {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// logf adapts logger to the printf-style hooks of the scanner and executor.
func logf(logger *slog.Logger) func(format string, args ...any) {
	return func(format string, args ...any) {
		logger.Info(fmt.Sprintf(format, args...))
	}
}

func defaultDBPath() string {
	if path := os.Getenv("JOBHUNTER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobhunter.db"
	}
	dir := filepath.Join(home, ".jobhunter")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "jobhunter.db")
}
