package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/haukened/namevet/internal/addr/common/clock"
	"github.com/haukened/namevet/internal/addr/common/log"
	"github.com/haukened/namevet/internal/addr/domain"
	"github.com/haukened/namevet/internal/addr/infra/config"
	"github.com/haukened/namevet/internal/addr/repos/rules"
	"github.com/haukened/namevet/internal/addr/repos/rules/bloom"
	"github.com/haukened/namevet/internal/addr/repos/rules/bolt"
	"github.com/haukened/namevet/internal/addr/repos/rules/lru"
	"github.com/haukened/namevet/internal/addr/repos/rules/mem"
	"github.com/haukened/namevet/internal/addr/repos/rules/parsers"
	"github.com/haukened/namevet/internal/addr/services/parser"
)

const (
	version = "0.1.0-dev"
	appName = "namevet"
)

// Application holds the wired components of the validator.
type Application struct {
	config *config.AppConfig
	parser *parser.Parser
	store  rules.Store // nil when running without a ruleset
}

func main() {
	mode := flag.String("mode", "domain", "what to parse: domain, dns, or email")
	flag.Parse()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "domain", "dns", "email":
	default:
		log.Fatal(map[string]any{"mode": *mode}, "Unsupported mode")
	}

	log.Debug(map[string]any{
		"version":    version,
		"env":        cfg.Env,
		"log_level":  cfg.LogLevel,
		"list_path":  cfg.ListPath,
		"db_path":    cfg.DBPath,
		"cache_size": cfg.CacheSize,
		"icann_only": cfg.ICANNOnly,
	}, "Starting namevet")

	// Build application with all dependencies
	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}
	defer app.Close()

	// Setup cancelable context for the stdin streaming path
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "Shutdown signal received")
		cancel()
	}()

	if !run(ctx, app.parser, *mode, flag.Args(), os.Stdin, os.Stdout) {
		app.Close()
		os.Exit(1)
	}
}

// buildApplication constructs all components and wires them together.
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	clk := clock.RealClock{}
	logger := log.GetLogger()

	app := &Application{config: cfg}

	// Without a list the parser still validates syntax; every suffix
	// is the default rule and nothing reports a known suffix.
	var ruleset parser.Ruleset = rules.NopRuleset{}

	if cfg.ListPath != "" {
		var store rules.Store
		var err error
		if cfg.DBPath != "" {
			store, err = bolt.New(cfg.DBPath)
		} else {
			store = mem.New()
		}
		if err != nil {
			return nil, fmt.Errorf("opening ruleset store: %w", err)
		}
		app.store = store

		cache, err := lru.New(cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating rule cache: %w", err)
		}
		repo := rules.NewRepository(store, cache, bloom.NewFactory(), cfg.BloomFPRate)

		f, err := os.Open(cfg.ListPath)
		if err != nil {
			return nil, fmt.Errorf("opening suffix list: %w", err)
		}
		defer f.Close()

		parsed, err := parsers.ParseSuffixList(f, cfg.ListPath, logger)
		if err != nil {
			return nil, err
		}
		if cfg.ICANNOnly {
			kept := parsed[:0]
			for _, r := range parsed {
				if r.Section == domain.SectionICANN {
					kept = append(kept, r)
				}
			}
			parsed = kept
		}

		snapshot := store.Stats().Version + 1
		if err := repo.UpdateAll(parsed, snapshot, clk.Now().Unix()); err != nil {
			return nil, fmt.Errorf("building ruleset: %w", err)
		}
		log.Info(map[string]any{
			"rules":    len(parsed),
			"source":   cfg.ListPath,
			"snapshot": snapshot,
		}, "Ruleset loaded")
		ruleset = repo
	}

	app.parser = parser.New(ruleset)
	return app, nil
}

// Close releases the ruleset store, when one is open.
func (a *Application) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

// run validates each name and writes one verdict line per input.
// Names come from args when given, otherwise one per stdin line.
// Returns false when any input was rejected.
func run(ctx context.Context, p *parser.Parser, mode string, names []string, in io.Reader, out io.Writer) bool {
	ok := true
	emit := func(name string) {
		line, err := verdict(p, mode, name)
		if err != nil {
			fmt.Fprintf(out, "%s\terror=%q\n", name, err)
			ok = false
			return
		}
		fmt.Fprintln(out, line)
	}

	if len(names) > 0 {
		for _, name := range names {
			if ctx.Err() != nil {
				return ok
			}
			emit(name)
		}
		return ok
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ok
		}
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		emit(name)
	}
	if err := scanner.Err(); err != nil {
		log.Error(map[string]any{"error": err}, "Reading input failed")
		return false
	}
	return ok
}

// verdict renders one validated name as a tab-separated line.
func verdict(p *parser.Parser, mode, name string) (string, error) {
	switch mode {
	case "dns":
		d, err := p.ParseDNSName(name)
		if err != nil {
			return "", err
		}
		suffix, _ := d.Suffix()
		return fmt.Sprintf("%s\tsuffix=%s\tknown=%v", d, suffix, d.HasKnownSuffix()), nil
	case "email":
		e, err := p.ParseEmailAddress(name)
		if err != nil {
			return "", err
		}
		root, _ := e.Root()
		return fmt.Sprintf("%s\tlocal=%s\thost=%s\troot=%s\tknown=%v",
			e, e.LocalPart(), e.Host(), root, e.HasKnownSuffix()), nil
	default: // domain
		d, err := p.ParseDomainName(name)
		if err != nil {
			return "", err
		}
		root, _ := d.Root()
		return fmt.Sprintf("%s\troot=%s\tsuffix=%s\tknown=%v",
			d, root, d.Suffix(), d.HasKnownSuffix()), nil
	}
}
