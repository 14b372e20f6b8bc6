// Package marketdata abstracts the external quote service the chatbot
// consults for ticker questions. The serving layer decides which
// implementation to wire in; the engine treats a missing provider or a
// failed lookup as a polite no-data answer.
package marketdata

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Quote is a point-in-time price for a symbol.
type Quote struct {
	Symbol string
	Price  float64
}

// Performance summarizes a symbol's trailing-year behavior.
type Performance struct {
	Symbol    string
	ChangePct float64
	High      float64
	Low       float64
	AvgVolume float64
}

// Provider fetches market data. Implementations must be safe for
// concurrent use and should honor ctx deadlines.
type Provider interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
	Performance(ctx context.Context, symbol string) (Performance, error)
}

// ErrUnknownSymbol reports a symbol the provider has no data for.
type ErrUnknownSymbol struct {
	Symbol string
}

func (e ErrUnknownSymbol) Error() string {
	return fmt.Sprintf("no market data for symbol %q", e.Symbol)
}

// StaticProvider serves quotes from a fixed in-memory table. It backs
// tests and offline deployments.
type StaticProvider struct {
	mu     sync.RWMutex
	quotes map[string]Quote
	perf   map[string]Performance
}

// NewStaticProvider creates an empty static provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		quotes: make(map[string]Quote),
		perf:   make(map[string]Performance),
	}
}

// SetQuote registers or replaces a quote.
func (p *StaticProvider) SetQuote(q Quote) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quotes[strings.ToUpper(q.Symbol)] = q
}

// SetPerformance registers or replaces performance data.
func (p *StaticProvider) SetPerformance(perf Performance) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.perf[strings.ToUpper(perf.Symbol)] = perf
}

// Quote implements Provider.
func (p *StaticProvider) Quote(_ context.Context, symbol string) (Quote, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	q, ok := p.quotes[strings.ToUpper(symbol)]
	if !ok {
		return Quote{}, ErrUnknownSymbol{Symbol: symbol}
	}
	return q, nil
}

// Performance implements Provider.
func (p *StaticProvider) Performance(_ context.Context, symbol string) (Performance, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	perf, ok := p.perf[strings.ToUpper(symbol)]
	if !ok {
		return Performance{}, ErrUnknownSymbol{Symbol: symbol}
	}
	return perf, nil
}
