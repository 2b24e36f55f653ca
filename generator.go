package tagid

import (
	"fmt"
	"strconv"

	"github.com/kotohiko/tagid/pkg/logger"
	"github.com/kotohiko/tagid/pkg/observability"
)

// Generator draws tag IDs from a Source.
//
// The zero value is not usable; construct with NewGenerator.
type Generator struct {
	source Source
	log    observability.StructuredLogger
}

type Option func(*Generator)

// WithSource sets the random source. A nil source is ignored.
func WithSource(source Source) Option {
	return func(g *Generator) {
		if source != nil {
			g.source = source
		}
	}
}

// WithLogger sets the logger used for draw and failure events.
// Without it the generator reports to the global logger.
func WithLogger(log observability.StructuredLogger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		source: nil,
		log:    nil,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.source == nil {
		g.source = NewMathSource(nil)
	}
	return g
}

func (g *Generator) IPTagID() (string, error) {
	return g.draw(KindIP, ipRange)
}

func (g *Generator) CharTagID() (string, error) {
	return g.draw(KindChar, charRange)
}

func (g *Generator) GeneralTagID() (string, error) {
	return g.draw(KindGeneral, generalRange)
}

// Generate draws an ID for kind.
func (g *Generator) Generate(kind Kind) (string, error) {
	r, ok := RangeFor(kind)
	if !ok {
		err := unknownKindError(kind)
		g.logger().Warn("tag id kind rejected", map[string]any{
			"kind":  string(kind),
			"error": err.Error(),
		})
		return "", err
	}
	return g.draw(kind, r)
}

func (g *Generator) draw(kind Kind, r Range) (string, error) {
	n, err := g.source.IntN(r.Width())
	if err == nil && (n < 0 || n >= r.Width()) {
		err = fmt.Errorf("draw %d outside [0, %d)", n, r.Width())
	}
	if err != nil {
		if ErrorCode(err) == "" {
			err = sourceError(err)
		}
		g.logger().Error("tag id draw failed", map[string]any{
			"kind":  string(kind),
			"error": err.Error(),
		})
		return "", err
	}

	id := strconv.Itoa(r.Min + n)
	g.logger().Debug("tag id generated", map[string]any{
		"kind": string(kind),
		"id":   id,
	})
	return id, nil
}

func (g *Generator) logger() observability.StructuredLogger {
	if g.log != nil {
		return g.log
	}
	return logger.Logger()
}
