// Package chatbot implements the conversational query-routing engine:
// an ordered cascade of intent matchers that turns an utterance plus
// an optional financial profile into a response. Matchers either
// resolve (terminal) or fall through; no stage returns an error, and
// the worst case is the generic fallback.
package chatbot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/finsage/finsage/advisor"
	"github.com/finsage/finsage/conversation"
	"github.com/finsage/finsage/finance"
	"github.com/finsage/finsage/knowledge"
	"github.com/finsage/finsage/marketdata"
)

// matchContext carries the per-call state every matcher can consult.
// It is built fresh for each GenerateResponse call and never shared.
type matchContext struct {
	clientID string
	profile  *finance.Profile
	summary  *finance.Summary
}

// matcher is one stage of the cascade. ok=false is the normal
// fall-through signal, not an error.
type matcher struct {
	name string
	try  func(ctx context.Context, msg string, mc *matchContext) (string, bool)
}

// Engine routes utterances through the matcher cascade. Construct it
// once and share it: the knowledge store is immutable and the tracker
// handles its own locking, so concurrent GenerateResponse calls are
// independent.
type Engine struct {
	store    *knowledge.Store
	tracker  *conversation.Tracker
	advisors []advisor.Advisor
	market   marketdata.Provider
	logger   *slog.Logger
	matchers []matcher
}

// Option configures an Engine.
type Option func(*Engine)

// WithMarketData wires a quote provider into the market-data matcher.
// Without one, ticker questions get a polite no-data answer.
func WithMarketData(p marketdata.Provider) Option {
	return func(e *Engine) { e.market = p }
}

// WithAdvisors replaces the default advisor list. Order is preserved.
func WithAdvisors(advisors []advisor.Advisor) Option {
	return func(e *Engine) { e.advisors = advisors }
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine builds the cascade over the given knowledge store and
// conversation tracker.
func NewEngine(store *knowledge.Store, tracker *conversation.Tracker, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		tracker:  tracker,
		advisors: advisor.Default(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "chatbot")

	// The cascade order is the precedence contract: small talk beats
	// everything, structured extraction beats glossary phrases, and
	// retrieval only runs when nothing more specific matched.
	e.matchers = []matcher{
		{name: "smalltalk", try: e.trySmallTalk},
		{name: "structured", try: e.tryStructured},
		{name: "glossary", try: e.tryGlossary},
		{name: "personalized", try: e.tryPersonalized},
		{name: "retrieval", try: e.tryRetrieval},
	}
	return e
}

// GenerateResponse runs the full cascade for one utterance. profile
// may be nil (general-knowledge mode) and clientID may be empty (no
// context tracking). The result is always non-empty text.
func (e *Engine) GenerateResponse(ctx context.Context, utterance string, profile *finance.Profile, clientID string) string {
	msg := strings.ToLower(strings.TrimSpace(utterance))

	if e.tracker != nil {
		e.tracker.Update(clientID, msg)
	}

	mc := &matchContext{
		clientID: clientID,
		profile:  profile,
		summary:  finance.CalculateSummary(profile),
	}

	for _, m := range e.matchers {
		if out, ok := m.try(ctx, msg, mc); ok {
			e.logger.Debug("cascade resolved",
				"matcher", m.name,
				"client_id", clientID,
				"has_profile", profile != nil,
			)
			return out
		}
	}

	e.logger.Debug("cascade exhausted, using fallback", "client_id", clientID)
	return e.fallbackResponse(mc)
}

