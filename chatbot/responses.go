package chatbot

import (
	"fmt"
	"strings"

	"github.com/finsage/finsage/finance"
	"github.com/finsage/finsage/internal/money"
)

// renderSummary produces the full financial overview a "summary" or
// "overview" request gets when a profile is on file.
func renderSummary(s *finance.Summary) string {
	var b strings.Builder
	b.WriteString("Here's your financial summary:\n\n")
	fmt.Fprintf(&b, "- Net Worth: %s\n", money.Format(s.NetWorth))
	fmt.Fprintf(&b, "- Total Assets: %s\n", money.Format(s.TotalAssets))
	fmt.Fprintf(&b, "- Total Liabilities: %s\n", money.Format(s.TotalLiabilities))
	fmt.Fprintf(&b, "- Annual Income: %s\n", money.Format(s.TotalIncome))
	fmt.Fprintf(&b, "- Annual Expenses: %s\n", money.Format(s.TotalExpenses))
	fmt.Fprintf(&b, "- Monthly Surplus: %s\n", money.Format(s.MonthlySurplus))
	fmt.Fprintf(&b, "- Savings Rate: %s\n", money.Percent(s.SavingsRate))
	fmt.Fprintf(&b, "- Debt-to-Income Ratio: %s\n\n", money.Percent(s.DebtToIncomeRatio))

	if s.NetWorth > 0 {
		b.WriteString("Great job! You have a positive net worth. ")
	} else {
		b.WriteString("Your net worth is negative, but don't worry - we can work on improving it. ")
	}

	switch {
	case s.SavingsRate > 20:
		b.WriteString("Your savings rate is excellent!")
	case s.SavingsRate > 10:
		b.WriteString("Your savings rate is good, but there's room for improvement.")
	default:
		b.WriteString("Consider increasing your savings rate to build wealth faster.")
	}
	return b.String()
}

// genericFallbacks are the canned responses used when the cascade
// exhausts and the client has no tracked topics.
var genericFallbacks = []string{
	"I'm here to help with any financial question - investments, savings, budgeting, taxes, insurance, retirement, and more.",
	"I can answer questions about personal finance, investing, retirement planning, and more. Try asking about a specific topic.",
	"For personalized advice, please provide your financial details. Otherwise, ask me about general financial topics.",
	"I specialize in financial advice. Try asking about investments, debt management, retirement planning, or other money topics.",
}

// fallbackResponse closes the cascade. When the tracker holds recent
// topics for this client the wording references them instead of being
// fully generic.
func (e *Engine) fallbackResponse(mc *matchContext) string {
	if e.tracker != nil && mc.clientID != "" {
		if ctx := e.tracker.Get(mc.clientID); len(ctx.RecentTopics) > 0 {
			return fmt.Sprintf("I'm happy to discuss %s further. Could you clarify or ask about a specific aspect?",
				strings.Join(dedupe(ctx.RecentTopics), ", "))
		}
	}
	return genericFallbacks[pick(mc.clientID, len(genericFallbacks))]
}

// dedupe removes repeated topics while keeping first-seen order.
func dedupe(topics []string) []string {
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
