package knowledge

import (
	"strings"
	"testing"
)

func TestDefinitionGlossary(t *testing.T) {
	s := NewStore()

	tests := []struct {
		term string
		want string // substring of the definition
	}{
		{"net worth", "assets minus liabilities"},
		{"Net  Worth?", "assets minus liabilities"},
		{"401(k)", "Employer-sponsored"},
		{"sip", "Systematic Investment Plan"},
		{"diversification", "reduce risk"},
	}
	for _, tc := range tests {
		got := s.Definition(tc.term)
		if got == "" {
			t.Errorf("Definition(%q) = empty, want match", tc.term)
			continue
		}
		if !strings.Contains(got, tc.want) {
			t.Errorf("Definition(%q) = %q, want substring %q", tc.term, got, tc.want)
		}
	}
}

func TestDefinitionUnknownTerm(t *testing.T) {
	s := NewStore()
	if got := s.Definition("flux capacitor"); got != "" {
		t.Errorf("unknown term should yield empty definition, got %q", got)
	}
	if got := s.Definition(""); got != "" {
		t.Errorf("empty term should yield empty definition, got %q", got)
	}
}

func TestTopicSingularFallback(t *testing.T) {
	s := NewStore()

	node, ok := s.Topic("stocks")
	if !ok {
		t.Fatal("Topic(stocks) should resolve via singular fallback")
	}
	if !strings.Contains(node.Definition, "ownership in a company") {
		t.Errorf("unexpected definition: %q", node.Definition)
	}

	if _, ok := s.Topic("investments bonds"); !ok {
		t.Error("flattened path alias should resolve")
	}
}

func TestCompare(t *testing.T) {
	s := NewStore()

	got := s.Compare("stocks", "bonds")
	if got == "" {
		t.Fatal("Compare(stocks, bonds) should produce a comparison")
	}
	if !strings.Contains(got, "stocks") || !strings.Contains(got, "bonds") {
		t.Errorf("comparison should mention both terms: %q", got)
	}

	if got := s.Compare("stocks", "flux capacitor"); got != "" {
		t.Errorf("comparison with unknown term should be empty, got %q", got)
	}
}

func TestStrategy(t *testing.T) {
	s := NewStore()

	tests := []struct {
		goal string
		want string
	}{
		{"retirement", "401(k)"},
		{"paying off debt", "avalanche"},
		{"saving money", "50/30/20"},
		{"college", "529"},
		{"buying a home", "down payment"},
		{"bonds", "laddering"},
	}
	for _, tc := range tests {
		got := s.Strategy(tc.goal)
		if !strings.Contains(got, tc.want) {
			t.Errorf("Strategy(%q) = %q, want substring %q", tc.goal, got, tc.want)
		}
	}

	if got := s.Strategy("world domination"); got != "" {
		t.Errorf("unknown goal should yield empty strategy, got %q", got)
	}
}

func TestBestFAQExactQuestion(t *testing.T) {
	s := NewStore()

	faq, score, ok := s.BestFAQ("what is a mutual fund")
	if !ok {
		t.Fatalf("expected a match, got none (score=%v)", score)
	}
	if !strings.Contains(faq.Answer, "pooled investment vehicle") {
		t.Errorf("unexpected answer: %q", faq.Answer)
	}
	if score <= DefaultThreshold {
		t.Errorf("score %v should exceed threshold %v", score, DefaultThreshold)
	}
}

func TestBestFAQParaphrase(t *testing.T) {
	s := NewStore()

	// Different wording, same token bag after normalization.
	if _, _, ok := s.BestFAQ("What IS the NAV??"); !ok {
		t.Error("paraphrased NAV question should match")
	}
}

func TestBestFAQNonsenseRejected(t *testing.T) {
	s := NewStore()

	// No lexical overlap with any FAQ question.
	if faq, score, ok := s.BestFAQ("purple elephants dance gracefully"); ok {
		t.Errorf("nonsense should not match, got %q (score=%v)", faq.Question, score)
	}
}

func TestBestFAQTieKeepsFirst(t *testing.T) {
	s := NewStore()

	// "mutual fund" reduces to the same token bag as the first corpus
	// question; the earliest entry must win the tie.
	faq, _, ok := s.BestFAQ("mutual fund")
	if !ok {
		t.Fatal("expected a match")
	}
	if faq.Question != "what is a mutual fund" {
		t.Errorf("tie should keep first corpus entry, got %q", faq.Question)
	}
}

func TestSetThreshold(t *testing.T) {
	s := NewStore()
	s.SetThreshold(0.99)
	// A partial-overlap query that clears 0.6 but not 0.99.
	if _, score, ok := s.BestFAQ("tell me about mutual funds and their many benefits today please"); ok && score < 0.99 {
		t.Errorf("match at score %v should be rejected at threshold 0.99", score)
	}

	s.SetThreshold(-1) // ignored
	if s.threshold != 0.99 {
		t.Errorf("invalid threshold should be ignored, got %v", s.threshold)
	}
}
