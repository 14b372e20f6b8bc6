package chatbot

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/finsage/finsage/internal/money"
)

// Structured-extraction templates. Utterances reach these already
// lowercased and trimmed.
var (
	pricePattern      = regexp.MustCompile(`(?:what is|what's|show me|tell me)\s+(?:the\s+)?(?:price|value) of ([a-z]{1,5})\s*\??$`)
	perfPattern       = regexp.MustCompile(`(?:how is|how's|what is|what's)\s+(?:the\s+)?performance of ([a-z]{1,5})\s*\??$`)
	futureValuePat    = regexp.MustCompile(`(?:calculate|what is)\s+(?:the\s+)?future value of \$?([0-9][0-9,]*(?:\.[0-9]+)?) at ([0-9]+(?:\.[0-9]+)?)% for ([0-9]+) years?`)
	presentValuePat   = regexp.MustCompile(`(?:calculate|what is)\s+(?:the\s+)?present value of \$?([0-9][0-9,]*(?:\.[0-9]+)?) at ([0-9]+(?:\.[0-9]+)?)% for ([0-9]+) years?`)
	definitionPattern = regexp.MustCompile(`(?:what is|what's|define)\s+(?:a\s+|an\s+|the\s+)?([a-z0-9][a-z0-9 ()-]*)\s*\??$`)
	comparisonPattern = regexp.MustCompile(`difference between\s+(?:a\s+|an\s+|the\s+)?([a-z0-9][a-z0-9 ()-]*?) and\s+(?:a\s+|an\s+|the\s+)?([a-z0-9][a-z0-9 ()-]*)\s*\??$`)
	strategyPattern   = regexp.MustCompile(`best (?:strategy|approach|way) (?:for|to)\s+([a-z0-9][a-z0-9 ()-]*)\s*\??$`)
)

func (e *Engine) tryMarketData(ctx context.Context, msg string) (string, bool) {
	if m := pricePattern.FindStringSubmatch(msg); m != nil {
		symbol := strings.ToUpper(m[1])
		if e.market == nil {
			return "I don't have live market data available right now. Please try again later.", true
		}
		q, err := e.market.Quote(ctx, symbol)
		if err != nil {
			e.logger.Warn("quote lookup failed", "symbol", symbol, "error", err)
			return "Sorry, I couldn't retrieve the price for " + symbol + ".", true
		}
		return fmt.Sprintf("The current price of %s is %s.", symbol, money.Format(q.Price)), true
	}

	if m := perfPattern.FindStringSubmatch(msg); m != nil {
		symbol := strings.ToUpper(m[1])
		if e.market == nil {
			return "I don't have live market data available right now. Please try again later.", true
		}
		perf, err := e.market.Performance(ctx, symbol)
		if err != nil {
			e.logger.Warn("performance lookup failed", "symbol", symbol, "error", err)
			return "Sorry, I couldn't retrieve performance data for " + symbol + ".", true
		}
		return fmt.Sprintf("The performance of %s: 1-year change: %.2f%%, High: %s, Low: %s, Avg Volume: %.0f.",
			symbol, perf.ChangePct, money.Format(perf.High), money.Format(perf.Low), perf.AvgVolume), true
	}

	return "", false
}

func (e *Engine) tryCalculation(msg string) (string, bool) {
	if m := futureValuePat.FindStringSubmatch(msg); m != nil {
		amount, rate, years, ok := parseCalcArgs(m)
		if !ok {
			return "I couldn't complete that calculation. Please check your inputs.", true
		}
		fv := amount * math.Pow(1+rate, float64(years))
		return fmt.Sprintf("The future value of %s at %.2f%% annual growth after %d years will be %s.",
			money.Format(amount), rate*100, years, money.Format(fv)), true
	}

	if m := presentValuePat.FindStringSubmatch(msg); m != nil {
		amount, rate, years, ok := parseCalcArgs(m)
		if !ok {
			return "I couldn't complete that calculation. Please check your inputs.", true
		}
		pv := amount / math.Pow(1+rate, float64(years))
		return fmt.Sprintf("The present value of %s discounted at %.2f%% for %d years is %s.",
			money.Format(amount), rate*100, years, money.Format(pv)), true
	}

	return "", false
}

// parseCalcArgs converts the three captured calculation parameters.
// The rate comes back as a fraction (7% → 0.07).
func parseCalcArgs(m []string) (amount, rate float64, years int, ok bool) {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, 0, 0, false
	}
	rate, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, 0, false
	}
	years, err = strconv.Atoi(m[3])
	if err != nil {
		return 0, 0, 0, false
	}
	return amount, rate / 100, years, true
}
