package chatbot

import (
	"context"
	"strings"

	"github.com/finsage/finsage/advisor"
	"github.com/finsage/finsage/internal/textnorm"
)

// Small-talk keyword sets. These are terminal with the highest
// precedence: "hello, what is a stock" greets rather than defines.
var (
	greetingWords  = []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon"}
	farewellWords  = []string{"bye", "goodbye", "see you", "farewell"}
	gratitudeWords = []string{"thanks", "thank you", "appreciate"}
)

var greetingResponses = []string{
	"Hello! I'm your personal financial assistant. How can I help you with your finances today?",
	"Hi there! I'm ready to discuss any financial topic or analyze your personal finances.",
	"Welcome back! What financial questions or analysis can I help with today?",
}

func (e *Engine) trySmallTalk(_ context.Context, msg string, _ *matchContext) (string, bool) {
	for _, w := range greetingWords {
		if textnorm.ContainsWord(msg, w) {
			return greetingResponses[pick(msg, len(greetingResponses))], true
		}
	}
	for _, w := range gratitudeWords {
		if textnorm.ContainsWord(msg, w) {
			return "You're welcome! Is there anything else I can help you with today?", true
		}
	}
	for _, w := range farewellWords {
		if textnorm.ContainsWord(msg, w) {
			return "Goodbye! Feel free to return if you have more financial questions.", true
		}
	}
	return "", false
}

// tryStructured applies the regex templates for market data,
// calculations, definitions, comparisons, strategies, and term lists.
// The first template that matches wins.
func (e *Engine) tryStructured(ctx context.Context, msg string, mc *matchContext) (string, bool) {
	if out, ok := e.tryTermList(msg); ok {
		return out, true
	}
	if out, ok := e.tryMarketData(ctx, msg); ok {
		return out, true
	}
	if out, ok := e.tryCalculation(msg); ok {
		return out, true
	}
	if out, ok := e.tryComparison(msg); ok {
		return out, true
	}
	if out, ok := e.tryStrategy(msg); ok {
		return out, true
	}
	if out, ok := e.tryDefinition(msg, mc); ok {
		return out, true
	}
	return "", false
}

var termListPhrases = []string{"what terms", "what financial terms", "list of terms", "what do you know"}

func (e *Engine) tryTermList(msg string) (string, bool) {
	for _, phrase := range termListPhrases {
		if strings.Contains(msg, phrase) {
			var b strings.Builder
			b.WriteString("I can explain these financial terms:\n")
			for _, t := range e.store.Terms() {
				b.WriteString("- ")
				b.WriteString(t.Name)
				b.WriteByte('\n')
			}
			b.WriteString("\nAsk me about any of these for more details!")
			return b.String(), true
		}
	}
	return "", false
}

func (e *Engine) tryDefinition(msg string, mc *matchContext) (string, bool) {
	m := definitionPattern.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	term := strings.TrimSpace(m[1])
	if term == "" {
		return "", false
	}

	// Possessive phrasings ("what is my net worth") are questions
	// about the client's own finances, not definition requests; let
	// the personalized stage handle them.
	if strings.HasPrefix(term, "my ") || strings.HasPrefix(term, "our ") {
		return "", false
	}

	def := e.store.Definition(term)
	if def == "" {
		return "I don't have a definition for '" + term + "'. Try asking about a different financial term.", true
	}
	return withProfilePrompt(capitalizeTerm(term)+": "+def, mc), true
}

func (e *Engine) tryComparison(msg string) (string, bool) {
	m := comparisonPattern.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	term1 := strings.TrimSpace(m[1])
	term2 := strings.TrimSpace(m[2])

	if cmp := e.store.Compare(term1, term2); cmp != "" {
		return cmp, true
	}
	return "I can't compare " + term1 + " and " + term2 + ". Try asking about more common financial terms.", true
}

func (e *Engine) tryStrategy(msg string) (string, bool) {
	m := strategyPattern.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	goal := strings.TrimSpace(m[1])

	if s := e.store.Strategy(goal); s != "" {
		return s, true
	}
	return "I don't have specific strategies for '" + goal + "'. Try asking about common financial goals like retirement or debt reduction.", true
}

// tryGlossary answers when the utterance contains a known glossary
// term as a phrase. Runs only after structured extraction found
// nothing.
func (e *Engine) tryGlossary(_ context.Context, msg string, mc *matchContext) (string, bool) {
	norm := textnorm.Normalize(msg)
	padded := " " + norm + " "
	for _, t := range e.store.Terms() {
		key := textnorm.Normalize(t.Name)
		if key == "" || !textnorm.ContainsWord(norm, key) {
			continue
		}
		// "my net worth" asks about the client's own number, not the
		// term; leave it for the personalized stage.
		if strings.Contains(padded, " my "+key+" ") || strings.Contains(padded, " our "+key+" ") {
			continue
		}
		return withProfilePrompt(t.Name+": "+t.Definition, mc), true
	}
	return "", false
}

// tryPersonalized delegates to the advisor chain, and handles the
// whole-summary request. Only runs when a profile is on file.
func (e *Engine) tryPersonalized(_ context.Context, msg string, mc *matchContext) (string, bool) {
	if mc.profile == nil || mc.summary == nil {
		return "", false
	}

	if text, name, ok := advisor.Advise(e.advisors, mc.profile, mc.summary, msg); ok {
		e.logger.Debug("advisor matched", "advisor", name, "client_id", mc.clientID)
		return text, true
	}

	for _, w := range []string{"summary", "overview", "status", "situation"} {
		if textnorm.ContainsWord(msg, w) {
			return renderSummary(mc.summary), true
		}
	}
	return "", false
}

// tryRetrieval is the semantic FAQ lookup; it only answers above the
// acceptance threshold.
func (e *Engine) tryRetrieval(_ context.Context, msg string, mc *matchContext) (string, bool) {
	faq, score, ok := e.store.BestFAQ(msg)
	if !ok {
		return "", false
	}
	e.logger.Debug("faq matched", "question", faq.Question, "score", score)
	return withProfilePrompt(faq.Answer, mc), true
}

// withProfilePrompt appends the personalization prompt for callers
// that have not supplied a profile.
func withProfilePrompt(text string, mc *matchContext) string {
	if mc.profile != nil {
		return text
	}
	return text + "\n\nFor personalized advice, please complete your financial profile."
}

// capitalizeTerm uppercases the first letter for response display.
func capitalizeTerm(term string) string {
	if term == "" {
		return term
	}
	return strings.ToUpper(term[:1]) + term[1:]
}

// pick selects a stable variant index from the utterance so repeated
// identical greetings get identical replies.
func pick(msg string, n int) int {
	if n <= 0 {
		return 0
	}
	var h uint32
	for i := 0; i < len(msg); i++ {
		h = h*31 + uint32(msg[i])
	}
	return int(h % uint32(n))
}
