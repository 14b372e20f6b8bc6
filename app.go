// Package finsage assembles the advisory core from configuration: the
// knowledge store, conversation tracker, matcher cascade, optional
// generative delegate, and the profile/history store. The serving
// layer constructs one App and calls Respond per utterance.
package finsage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/finsage/finsage/chatbot"
	"github.com/finsage/finsage/config"
	"github.com/finsage/finsage/conversation"
	"github.com/finsage/finsage/delegate"
	"github.com/finsage/finsage/finance"
	"github.com/finsage/finsage/knowledge"
	"github.com/finsage/finsage/marketdata"
	"github.com/finsage/finsage/store"
)

// App is the wired advisory core.
type App struct {
	Engine   *chatbot.Engine
	Delegate *delegate.Delegate
	Store    store.Store
	Tracker  *conversation.Tracker
	Logger   *slog.Logger
}

type options struct {
	logger    *slog.Logger
	market    marketdata.Provider
	generator delegate.Generator
}

// Option adjusts how New assembles the App.
type Option func(*options)

// WithLogger replaces the logger built from cfg.LogLevel.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMarketData supplies the quote provider used when
// cfg.MarketData.Enabled is set.
func WithMarketData(p marketdata.Provider) Option {
	return func(o *options) { o.market = p }
}

// WithGenerator supplies the delegate backend, overriding the Gemini
// generator New would build from cfg.Delegate.
func WithGenerator(g delegate.Generator) Option {
	return func(o *options) { o.generator = g }
}

// New builds an App from configuration. A nil cfg uses the defaults.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		level, err := config.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: config.ReplaceLogLevelNames,
		}))
	}

	ks := knowledge.NewStore()
	if cfg.Retrieval.Threshold > 0 {
		ks.SetThreshold(cfg.Retrieval.Threshold)
	}

	tracker := conversation.NewTracker(logger)

	engineOpts := []chatbot.Option{chatbot.WithLogger(logger)}
	if cfg.MarketData.Enabled && o.market != nil {
		engineOpts = append(engineOpts, chatbot.WithMarketData(o.market))
	}
	engine := chatbot.NewEngine(ks, tracker, engineOpts...)

	st, err := openStore(cfg.Store)
	if err != nil {
		return nil, err
	}

	gen := o.generator
	if gen == nil && cfg.Delegate.Enabled {
		gen, err = delegate.NewGeminiGenerator(ctx, cfg.Delegate.APIKey, cfg.Delegate.Model)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("build delegate: %w", err)
		}
	}
	d := delegate.New(gen, engine,
		delegate.WithTimeout(cfg.Delegate.Timeout()),
		delegate.WithLogger(logger),
	)

	return &App{
		Engine:   engine,
		Delegate: d,
		Store:    st,
		Tracker:  tracker,
		Logger:   logger,
	}, nil
}

func openStore(cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Driver {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "sqlite":
		if cfg.Path == "" {
			return nil, errors.New("store: sqlite driver requires a path")
		}
		return store.NewSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}
}

// Respond answers one utterance for a client: the stored profile (if
// any) is attached, the delegate or cascade produces the reply, and
// both turns are recorded in the chat history. Always returns
// non-empty text.
func (a *App) Respond(ctx context.Context, clientID, utterance string) string {
	var profile *finance.Profile
	if clientID != "" {
		p, err := a.Store.GetProfile(clientID)
		switch {
		case err == nil:
			profile = p
		case !errors.Is(err, store.ErrNotFound):
			a.Logger.Warn("profile load failed", "client_id", clientID, "error", err)
		}
	}

	reply := a.Delegate.Respond(ctx, utterance, profile, clientID)

	if clientID != "" {
		if err := a.Store.AppendMessage(clientID, "user", utterance); err != nil {
			a.Logger.Warn("history write failed", "client_id", clientID, "error", err)
		}
		if err := a.Store.AppendMessage(clientID, "assistant", reply); err != nil {
			a.Logger.Warn("history write failed", "client_id", clientID, "error", err)
		}
	}
	return reply
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
