package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/redsepro/knacks"
	"github.com/redsepro/knacks/browse"
	"github.com/redsepro/knacks/fs"
	"github.com/redsepro/knacks/goquery"
	"github.com/redsepro/knacks/htmltomarkdown"
	knackshttp "github.com/redsepro/knacks/http"
	"github.com/redsepro/knacks/search"
	knacksslog "github.com/redsepro/knacks/slog"
	"github.com/redsepro/knacks/sqlite"
	"github.com/redsepro/knacks/toml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config starts from the defaults; Run overlays the config file, the
	// environment, and the flags.
	Config knacks.Config

	// ConfigPath is the config file read when --config is not given.
	ConfigPath string

	// SQLite database used by the session service.
	DB *sqlite.DB

	Fetcher knacks.Fetcher

	logFile *os.File
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config:     knacks.DefaultConfig(),
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var errs []error
	if m.Fetcher != nil {
		errs = append(errs, m.Fetcher.Close())
	}
	if m.DB != nil {
		errs = append(errs, m.DB.Close())
	}
	if m.logFile != nil {
		errs = append(errs, m.logFile.Close())
	}
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: &m.Config,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("knacks"),
		kong.Description("Browse and search a knacks site from the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	if err := m.configure(cli); err != nil {
		return err
	}
	if cmd == "config" {
		return kongCtx.Run(deps)
	}
	if err := m.Config.Validate(); err != nil {
		fmt.Fprintln(stderr, "Hint: set base_url in the config file, KNACKS_BASE_URL, or --base-url")
		return err
	}

	logger, err := m.openLogger(cmd, cli.Verbose, stderr)
	if err != nil {
		return err
	}
	defer m.Close()
	deps.Logger = logger

	m.Fetcher = knackshttp.NewFetcher(knackshttp.WithTimeout(m.Config.Timeout))
	fetcher := knacksslog.NewLoggingFetcher(m.Fetcher, logger)
	docParser := goquery.NewParser()

	deps.Index = search.NewIndexLoader(fetcher, m.Config.IndexURL(), logger)
	deps.Catalog = &browse.Catalog{Fetcher: fetcher, Parser: docParser, URL: m.Config.ListURL()}
	deps.Renderer = &browse.Renderer{
		Fetcher:     fetcher,
		Parser:      docParser,
		Converter:   htmltomarkdown.NewConverter(),
		DocumentURL: m.Config.DocumentURL,
	}
	deps.NewStore = func(dir string) knacks.DocumentStore {
		return fs.NewStore(filepath.Dir(dir), filepath.Base(dir))
	}

	if cmd == "browse" {
		m.DB = sqlite.NewDB(m.Config.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set KNACKS_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
		}
		deps.Sessions = knacksslog.NewLoggingSessionService(sqlite.NewSessionService(m.DB), logger)
	}

	return kongCtx.Run(deps)
}

// configure overlays the config file and the flags onto m.Config.
func (m *Main) configure(cli *CLI) error {
	path, optional := cli.Config, false
	if path == "" {
		path, optional = m.ConfigPath, true
	}
	if path != "" {
		if err := toml.Load(path, &m.Config, optional); err != nil {
			return err
		}
	}

	if cli.BaseURL != "" {
		m.Config.BaseURL = cli.BaseURL
	}
	if cli.DB != "" {
		m.Config.DBPath = cli.DB
	}
	if cli.LogFile != "" {
		m.Config.LogFile = cli.LogFile
	}
	if m.Config.DBPath == "" {
		m.Config.DBPath = defaultDataPath("knacks.db")
	}
	if m.Config.LogFile == "" {
		m.Config.LogFile = defaultCachePath("knacks.log")
	}
	return nil
}

// openLogger logs to the log file while the browser owns the terminal and
// to stderr otherwise.
func (m *Main) openLogger(cmd string, verbose bool, stderr io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if cmd != "browse" {
		return slog.New(slog.NewTextHandler(stderr, opts)), nil
	}

	if err := os.MkdirAll(filepath.Dir(m.Config.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(m.Config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	m.logFile = f
	if !verbose {
		opts.Level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(f, opts)), nil
}

// errorText is the message printed for err: the application message when
// there is one, the full error otherwise.
func errorText(err error) string {
	if knacks.ErrorCode(err) == knacks.EINTERNAL {
		return err.Error()
	}
	return knacks.ErrorMessage(err)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "knacks", "knacks.toml")
}

func defaultDataPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	dir = filepath.Join(dir, "knacks")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, name)
}

func defaultCachePath(name string) string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "knacks", name)
}
