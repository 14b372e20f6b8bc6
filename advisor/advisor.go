// Package advisor implements the personalized, topic-specific analysis
// the chatbot runs when a client has a financial profile on file. Each
// advisor is a pure function over profile + summary; they are tried in
// a fixed priority order and the first one that matches the utterance
// and produces text wins.
package advisor

import "github.com/finsage/finsage/finance"

// Advisor analyzes one financial topic.
type Advisor struct {
	// Name labels the advisor for logging.
	Name string
	// Keywords are lowercased trigger substrings; any hit activates
	// the advisor.
	Keywords []string
	// Respond produces the guidance text. An empty result lets later
	// advisors run.
	Respond func(p *finance.Profile, s *finance.Summary, msg string) string
}

// matches reports whether any keyword occurs in the lowercased
// utterance.
func (a Advisor) matches(msg string) bool {
	for _, kw := range a.Keywords {
		if contains(msg, kw) {
			return true
		}
	}
	return false
}

// Default returns the advisors in their fixed priority order. The
// order is part of the contract: an utterance matching several topics
// gets the earliest advisor's answer.
func Default() []Advisor {
	return []Advisor{
		netWorthAdvisor(),
		savingsAdvisor(),
		debtAdvisor(),
		retirementAdvisor(),
		incomeAdvisor(),
		budgetAdvisor(),
		investmentAdvisor(),
		insuranceAdvisor(),
		taxAdvisor(),
		goalsAdvisor(),
		collegeAdvisor(),
		homeAdvisor(),
	}
}

// Advise runs the advisors in order against the utterance. It returns
// the first non-empty response and the advisor's name, or ok=false
// when nothing matched. Callers only invoke it with a non-nil profile
// and summary.
func Advise(advisors []Advisor, p *finance.Profile, s *finance.Summary, msg string) (text, name string, ok bool) {
	for _, a := range advisors {
		if !a.matches(msg) {
			continue
		}
		if out := a.Respond(p, s, msg); out != "" {
			return out, a.Name, true
		}
	}
	return "", "", false
}
