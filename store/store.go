// Package store persists client profiles and chat history.
package store

import (
	"errors"
	"time"

	"github.com/finsage/finsage/finance"
)

// ErrNotFound is returned when a client has no stored profile.
var ErrNotFound = errors.New("store: client not found")

// Message is one turn of a recorded conversation.
type Message struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Store persists profiles and per-client chat history.
type Store interface {
	// GetProfile returns the stored profile, or ErrNotFound.
	GetProfile(clientID string) (*finance.Profile, error)

	// SaveProfile inserts or replaces the client's profile. The risk
	// tolerance is normalized before it is written.
	SaveProfile(clientID string, p *finance.Profile) error

	// AppendMessage records one conversation turn.
	AppendMessage(clientID, role, content string) error

	// History returns the most recent messages in chronological order.
	// limit <= 0 means all.
	History(clientID string, limit int) ([]Message, error)

	Close() error
}

func normalize(p *finance.Profile) *finance.Profile {
	cp := *p
	cp.RiskTolerance = finance.NormalizeRiskTolerance(cp.RiskTolerance)
	return &cp
}

func tail(msgs []Message, limit int) []Message {
	if limit > 0 && len(msgs) > limit {
		return msgs[len(msgs)-limit:]
	}
	return msgs
}
