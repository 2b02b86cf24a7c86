package intelligence

import (
	"context"
	"time"

	"silesiagrand/models"

	"go.uber.org/zap"
)

const defaultCompletionTimeout = 30 * time.Second

// Gateway isolates the concierge from its completion provider. Every provider failure
// is logged and turned into models.ConciergeFallbackReply.
type Gateway struct {
	provider Provider
	persona  string
	timeout  time.Duration
	logger   *zap.Logger
}

type GatewayOption func(*Gateway)

// WithTimeout bounds each provider call. A call that runs over resolves to the fallback.
func WithTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithPersona replaces HotelContext as the system instruction.
func WithPersona(p string) GatewayOption {
	return func(g *Gateway) { g.persona = p }
}

func NewGateway(provider Provider, logger *zap.Logger, opts ...GatewayOption) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Gateway{
		provider: provider,
		persona:  HotelContext,
		timeout:  defaultCompletionTimeout,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Complete returns the provider's reply verbatim, or the fallback reply when the
// provider fails. The returned error is always nil.
func (g *Gateway) Complete(ctx context.Context, utterance string, history []models.ChatTurn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	text, err := g.generate(ctx, history, utterance)
	if err != nil {
		g.logger.Error("Concierge completion failed",
			zap.String("provider", g.provider.Name()),
			zap.Int("history", len(history)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return models.ConciergeFallbackReply, nil
	}

	g.logger.Debug("Concierge completion",
		zap.String("provider", g.provider.Name()),
		zap.Int("history", len(history)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return text, nil
}

type generateResult struct {
	text string
	err  error
}

// generate stops waiting once ctx expires, even if the provider ignores it.
func (g *Gateway) generate(ctx context.Context, history []models.ChatTurn, utterance string) (string, error) {
	done := make(chan generateResult, 1)
	go func() {
		text, err := g.provider.Generate(ctx, g.persona, history, utterance)
		done <- generateResult{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
