// Package delegate layers a language model in front of the rule-based
// response engine. The model gets first crack at every utterance; any
// failure, timeout, or empty reply falls back to the deterministic
// cascade so the caller always gets an answer.
package delegate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finsage/finsage/chatbot"
	"github.com/finsage/finsage/finance"
	"github.com/finsage/finsage/internal/money"
)

// DefaultTimeout bounds a single generation attempt.
const DefaultTimeout = 20 * time.Second

const systemPrompt = "You are a helpful personal finance assistant. " +
	"Answer briefly and factually. Use the client's financial context when it is provided. " +
	"Do not invent numbers that are not in the context. " +
	"If you cannot answer from the context, say so plainly."

// Request carries one generation attempt to a model backend.
type Request struct {
	System    string
	Context   string
	Utterance string
}

// Generator produces a free-form reply for a single request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Delegate tries a Generator first and falls back to the engine.
type Delegate struct {
	gen     Generator
	engine  *chatbot.Engine
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Delegate.
type Option func(*Delegate)

// WithTimeout overrides the per-attempt deadline.
func WithTimeout(d time.Duration) Option {
	return func(dl *Delegate) {
		if d > 0 {
			dl.timeout = d
		}
	}
}

// WithLogger sets the delegate's logger.
func WithLogger(l *slog.Logger) Option {
	return func(dl *Delegate) {
		if l != nil {
			dl.logger = l
		}
	}
}

// New builds a Delegate. gen may be nil, in which case every call goes
// straight to the engine.
func New(gen Generator, engine *chatbot.Engine, opts ...Option) *Delegate {
	d := &Delegate{
		gen:     gen,
		engine:  engine,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Respond answers the utterance, preferring the model backend. The
// engine cascade is the answer of last resort and never errors.
func (d *Delegate) Respond(ctx context.Context, utterance string, profile *finance.Profile, clientID string) string {
	if d.gen != nil {
		genCtx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		req := Request{
			System:    systemPrompt,
			Context:   ContextBlock(profile),
			Utterance: utterance,
		}
		text, err := d.gen.Generate(genCtx, req)
		if err == nil {
			if t := strings.TrimSpace(text); t != "" {
				return t
			}
			d.logger.Warn("delegate returned empty reply, using rule engine", "client_id", clientID)
		} else {
			d.logger.Warn("delegate generation failed, using rule engine", "client_id", clientID, "error", err)
		}
	}
	return d.engine.GenerateResponse(ctx, utterance, profile, clientID)
}

// ContextBlock renders a profile and its derived summary as plain text
// suitable for a model prompt. Returns "" for a nil profile.
func ContextBlock(p *finance.Profile) string {
	if p == nil {
		return ""
	}
	s := finance.CalculateSummary(p)

	var b strings.Builder
	b.WriteString("Client financial profile:\n")
	writeAmount(&b, "Monthly salary", p.MonthlySalary)
	writeAmount(&b, "Annual bonus", p.AnnualBonus)
	writeAmount(&b, "Other income", p.OtherIncome)
	writeAmount(&b, "Monthly rent", p.MonthlyRent)
	writeAmount(&b, "Utilities", p.Utilities)
	writeAmount(&b, "Food expenses", p.FoodExpenses)
	writeAmount(&b, "Transportation", p.Transportation)
	writeAmount(&b, "Entertainment", p.Entertainment)
	writeAmount(&b, "Healthcare", p.Healthcare)
	writeAmount(&b, "Other expenses", p.OtherExpenses)
	writeAmount(&b, "Savings account", p.SavingsAccount)
	writeAmount(&b, "Checking account", p.CheckingAccount)
	writeAmount(&b, "Investments", p.Investments)
	writeAmount(&b, "Property value", p.PropertyValue)
	writeAmount(&b, "Vehicle value", p.VehicleValue)
	writeAmount(&b, "Other assets", p.OtherAssets)
	writeAmount(&b, "Credit card debt", p.CreditCardDebt)
	writeAmount(&b, "Student loans", p.StudentLoans)
	writeAmount(&b, "Mortgage", p.Mortgage)
	writeAmount(&b, "Car loan", p.CarLoan)
	writeAmount(&b, "Other debts", p.OtherDebts)

	b.WriteString("\nDerived summary:\n")
	writeAmount(&b, "Total annual income", s.TotalIncome)
	writeAmount(&b, "Total annual expenses", s.TotalExpenses)
	writeAmount(&b, "Total assets", s.TotalAssets)
	writeAmount(&b, "Total liabilities", s.TotalLiabilities)
	writeAmount(&b, "Net worth", s.NetWorth)
	writeAmount(&b, "Monthly surplus", s.MonthlySurplus)
	fmt.Fprintf(&b, "- Savings rate: %s\n", money.Percent(s.SavingsRate))
	fmt.Fprintf(&b, "- Debt-to-income ratio: %s\n", money.Percent(s.DebtToIncomeRatio))

	fmt.Fprintf(&b, "- Risk tolerance: %s\n", p.RiskTolerance)
	if goals := strings.TrimSpace(p.FinancialGoals); goals != "" {
		fmt.Fprintf(&b, "- Financial goals: %s\n", goals)
	}
	return b.String()
}

func writeAmount(b *strings.Builder, label string, v float64) {
	fmt.Fprintf(b, "- %s: %s\n", label, money.Format(v))
}
