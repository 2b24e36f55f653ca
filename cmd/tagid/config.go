package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kotohiko/tagid"
	"github.com/kotohiko/tagid/pkg/observability"
)

const (
	envKind      = "TAGID_KIND"
	envCount     = "TAGID_COUNT"
	envSeed      = "TAGID_SEED"
	envSource    = "TAGID_SOURCE"
	envLogLevel  = "TAGID_LOG_LEVEL"
	envLogFormat = "TAGID_LOG_FORMAT"

	sourceMath   = "math"
	sourceCrypto = "crypto"

	maxCount = 1_000_000
)

type config struct {
	kind    tagid.Kind
	count   int
	seed    uint64
	seeded  bool
	source  string
	logging observability.LoggerConfig
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("tagid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		kind      string
		count     string
		seed      string
		source    string
		logLevel  string
		logFormat string
	)
	fs.StringVar(&kind, "kind", envOr(envKind, string(tagid.KindGeneral)), "tag kind: ip, char or general")
	fs.StringVar(&count, "n", envOr(envCount, "1"), "number of ids to print")
	fs.StringVar(&seed, "seed", envOr(envSeed, ""), "deterministic seed (math source only)")
	fs.StringVar(&source, "source", envOr(envSource, sourceMath), "random source: math or crypto")
	fs.StringVar(&logLevel, "log-level", envOr(envLogLevel, "warn"), "log level")
	fs.StringVar(&logFormat, "log-format", envOr(envLogFormat, "console"), "log format: console or json")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := config{
		source: strings.ToLower(strings.TrimSpace(source)),
		logging: observability.LoggerConfig{
			Format: logFormat,
			Level:  logLevel,
		},
	}

	k, err := tagid.ParseKind(kind)
	if err != nil {
		return config{}, err
	}
	cfg.kind = k

	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || n < 1 || n > maxCount {
		return config{}, fmt.Errorf("count must be between 1 and %d, got %q", maxCount, count)
	}
	cfg.count = n

	switch cfg.source {
	case sourceMath, sourceCrypto:
	default:
		return config{}, fmt.Errorf("unsupported source %q", source)
	}

	if seed != "" {
		if cfg.source == sourceCrypto {
			return config{}, errors.New("seed cannot be combined with the crypto source")
		}
		s, err := strconv.ParseUint(strings.TrimSpace(seed), 10, 64)
		if err != nil {
			return config{}, fmt.Errorf("invalid seed %q", seed)
		}
		cfg.seed = s
		cfg.seeded = true
	}

	return cfg, nil
}

func (c config) newSource() tagid.Source {
	switch {
	case c.source == sourceCrypto:
		return tagid.CryptoSource{}
	case c.seeded:
		return tagid.NewSeededSource(c.seed)
	default:
		return tagid.NewMathSource(nil)
	}
}
