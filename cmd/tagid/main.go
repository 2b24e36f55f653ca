package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/kotohiko/tagid"
	"github.com/kotohiko/tagid/pkg/logger"
	obszap "github.com/kotohiko/tagid/pkg/observability/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "tagid: FAIL: %v\n", err)
		return 2
	}

	log, err := obszap.NewZapLogger(cfg.logging, obszap.WithOutput(zapcore.AddSync(stderr)))
	if err != nil {
		fmt.Fprintf(stderr, "tagid: FAIL: %v\n", err)
		return 2
	}
	logger.SetLogger(log)
	defer func() {
		_ = log.Flush(context.Background())
		logger.SetLogger(nil)
	}()

	log.Info("generating tag ids", map[string]any{
		"kind":   cfg.kind.String(),
		"count":  cfg.count,
		"source": cfg.source,
		"seeded": cfg.seeded,
	})

	gen := tagid.NewGenerator(tagid.WithSource(cfg.newSource()), tagid.WithLogger(log))
	out := bufio.NewWriter(stdout)
	for i := 0; i < cfg.count; i++ {
		id, err := gen.Generate(cfg.kind)
		if err != nil {
			_ = out.Flush()
			fmt.Fprintf(stderr, "tagid: FAIL: %v\n", err)
			return 2
		}
		fmt.Fprintln(out, id)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "tagid: FAIL: %v\n", err)
		return 2
	}
	return 0
}
