// Package conversation tracks lightweight per-client dialogue state:
// the topics a client has touched recently and any risk-tolerance
// language they have used. The tracker is the only shared mutable
// state in the reasoning core.
package conversation

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/finsage/finsage/internal/textnorm"
)

// maxTopics bounds the per-client topic history. Oldest entries are
// evicted first.
const maxTopics = 5

// Context is a snapshot of one client's conversational state.
type Context struct {
	RecentTopics []string // FIFO, oldest first, at most maxTopics
	RiskHint     string   // "conservative", "moderate", "aggressive", or ""
}

// topicKeywords maps detectable topic labels to trigger words checked
// against the lowercased utterance.
var topicKeywords = []struct {
	Label    string
	Keywords []string
}{
	{"net worth", []string{"net worth", "wealth", "total value"}},
	{"savings", []string{"save", "saving", "savings", "emergency fund"}},
	{"debt", []string{"debt", "loan", "credit card", "mortgage", "owe"}},
	{"investment", []string{"invest", "investing", "investments", "stocks", "portfolio", "mutual fund", "bond"}},
	{"retirement", []string{"retire", "retirement", "401k", "401(k)", "ira"}},
	{"budget", []string{"budget", "expense", "spending"}},
	{"insurance", []string{"insurance"}},
	{"tax", []string{"tax", "taxes", "deduction"}},
}

// riskKeywords maps risk hints to signal phrases, checked only when
// the utterance mentions risk at all.
var riskKeywords = []struct {
	Level    string
	Keywords []string
}{
	{"conservative", []string{"safe", "conservative", "low risk", "preserve capital"}},
	{"moderate", []string{"balanced", "moderate", "some risk", "growth and income"}},
	{"aggressive", []string{"aggressive", "high risk", "maximum growth", "speculative"}},
}

type clientState struct {
	mu     sync.Mutex
	topics []string
	risk   string
}

// Tracker maintains per-client conversation context. Entries are
// created lazily on first use and never destroyed; the bounded topic
// list keeps each one small. Updates for different clients proceed in
// parallel; updates for the same client serialize on a per-entry
// mutex so topic history is never lost.
type Tracker struct {
	mu      sync.RWMutex
	clients map[string]*clientState
	logger  *slog.Logger
}

// NewTracker creates an empty tracker.
func NewTracker(logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		clients: make(map[string]*clientState),
		logger:  logger.With("component", "conversation"),
	}
}

// NewSessionID returns a fresh identifier for callers that have no
// stable client id of their own.
func NewSessionID() string {
	return uuid.NewString()
}

// Update records any topic and risk signals found in the utterance for
// the given client. Empty client ids are ignored.
func (t *Tracker) Update(clientID, utterance string) {
	if clientID == "" {
		return
	}
	state := t.state(clientID)
	msg := strings.ToLower(utterance)

	topic := detectTopic(msg)
	risk := detectRisk(msg)
	if topic == "" && risk == "" {
		return
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if topic != "" {
		state.topics = append(state.topics, topic)
		if len(state.topics) > maxTopics {
			state.topics = state.topics[len(state.topics)-maxTopics:]
		}
	}
	if risk != "" {
		state.risk = risk
		t.logger.Debug("risk hint detected", "client_id", clientID, "risk", risk)
	}
}

// Get returns a copy of the client's context. Unknown clients get a
// zero Context; no entry is created.
func (t *Tracker) Get(clientID string) Context {
	t.mu.RLock()
	state, ok := t.clients[clientID]
	t.mu.RUnlock()
	if !ok {
		return Context{}
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	topics := make([]string, len(state.topics))
	copy(topics, state.topics)
	return Context{RecentTopics: topics, RiskHint: state.risk}
}

// state returns the client's entry, creating it on first access.
func (t *Tracker) state(clientID string) *clientState {
	t.mu.RLock()
	state, ok := t.clients[clientID]
	t.mu.RUnlock()
	if ok {
		return state
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if state, ok = t.clients[clientID]; ok {
		return state
	}
	state = &clientState{}
	t.clients[clientID] = state
	return state
}

func detectTopic(msg string) string {
	for _, tk := range topicKeywords {
		for _, kw := range tk.Keywords {
			if textnorm.ContainsWord(msg, kw) {
				return tk.Label
			}
		}
	}
	return ""
}

func detectRisk(msg string) string {
	if !textnorm.ContainsWord(msg, "risk") {
		return ""
	}
	for _, rk := range riskKeywords {
		for _, kw := range rk.Keywords {
			if textnorm.ContainsWord(msg, kw) {
				return rk.Level
			}
		}
	}
	return ""
}
