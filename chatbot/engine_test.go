package chatbot

import (
	"context"
	"strings"
	"testing"

	"github.com/finsage/finsage/conversation"
	"github.com/finsage/finsage/finance"
	"github.com/finsage/finsage/knowledge"
	"github.com/finsage/finsage/marketdata"
)

func testEngine(opts ...Option) *Engine {
	return NewEngine(knowledge.NewStore(), conversation.NewTracker(nil), opts...)
}

func testProfile() *finance.Profile {
	return &finance.Profile{
		MonthlySalary:   5000,
		AnnualBonus:     2000,
		MonthlyRent:     1200,
		Utilities:       150,
		FoodExpenses:    400,
		Transportation:  200,
		Entertainment:   100,
		Healthcare:      100,
		OtherExpenses:   50,
		SavingsAccount:  10000,
		CheckingAccount: 5000,
		Investments:     20000,
		VehicleValue:    8000,
		CreditCardDebt:  3000,
		StudentLoans:    15000,
		CarLoan:         5000,
		RiskTolerance:   finance.RiskModerate,
	}
}

func isGreeting(s string) bool {
	for _, g := range greetingResponses {
		if s == g {
			return true
		}
	}
	return false
}

func TestGreeting(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "hello", nil, "")
	if !isGreeting(got) {
		t.Errorf("greeting expected, got %q", got)
	}
}

func TestGreetingIgnoresProfile(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "hello", testProfile(), "c1")
	if !isGreeting(got) {
		t.Errorf("greeting should win regardless of profile, got %q", got)
	}
}

func TestGreetingBeatsDefinition(t *testing.T) {
	// Cascade precedence: stage 1 wins even when stage 2 would match.
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "hello, what is a mutual fund", nil, "")
	if !isGreeting(got) {
		t.Errorf("greeting should take precedence over definition, got %q", got)
	}
}

func TestGreetingNeedsWordBoundary(t *testing.T) {
	// "hi" inside "this" must not greet.
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "is this a good savings rate", nil, "")
	if isGreeting(got) {
		t.Error("substring 'hi' in 'this' should not trigger a greeting")
	}
}

func TestFarewellAndGratitude(t *testing.T) {
	e := testEngine()
	if got := e.GenerateResponse(context.Background(), "goodbye", nil, ""); !strings.Contains(got, "Goodbye") {
		t.Errorf("farewell response expected, got %q", got)
	}
	if got := e.GenerateResponse(context.Background(), "thanks a lot", nil, ""); !strings.Contains(got, "You're welcome") {
		t.Errorf("gratitude response expected, got %q", got)
	}
}

func TestDefinitionWithoutProfile(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "what is a mutual fund", nil, "")
	if !strings.Contains(got, "pooled investment vehicle") {
		t.Errorf("mutual fund definition expected, got %q", got)
	}
	if !strings.Contains(got, "complete your financial profile") {
		t.Errorf("response should prompt for a profile, got %q", got)
	}
}

func TestDefinitionWithProfileNoPrompt(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "what is diversification", testProfile(), "c1")
	if !strings.Contains(got, "reduce risk") {
		t.Errorf("diversification definition expected, got %q", got)
	}
	if strings.Contains(got, "complete your financial profile") {
		t.Errorf("profiled caller should not be prompted, got %q", got)
	}
}

func TestDefinitionUnknownTermPolite(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "what is a flux capacitor", nil, "")
	if !strings.Contains(got, "don't have a definition") {
		t.Errorf("unknown term should get a polite no-definition reply, got %q", got)
	}
}

func TestComparison(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "what is the difference between a stock and a bond", nil, "")
	if !strings.Contains(got, "Comparison of stock and bond") {
		t.Errorf("comparison expected, got %q", got)
	}
}

func TestStrategyRequest(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "what is the best strategy for retirement", nil, "")
	if !strings.Contains(got, "401(k)") {
		t.Errorf("retirement strategy expected, got %q", got)
	}
}

func TestTermList(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "what financial terms do you know", nil, "")
	if !strings.Contains(got, "Net Worth") || !strings.Contains(got, "Mutual Fund") {
		t.Errorf("term list expected, got %q", got)
	}
}

func TestFutureValueCalculation(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "calculate the future value of $1,000 at 5% for 10 years", nil, "")
	// 1000 * 1.05^10 = 1628.89
	if !strings.Contains(got, "$1,628.89") {
		t.Errorf("future value expected, got %q", got)
	}
}

func TestPresentValueCalculation(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "what is the present value of 1000 at 5% for 10 years", nil, "")
	// 1000 / 1.05^10 = 613.91
	if !strings.Contains(got, "$613.91") {
		t.Errorf("present value expected, got %q", got)
	}
}

func TestMarketDataWithProvider(t *testing.T) {
	p := marketdata.NewStaticProvider()
	p.SetQuote(marketdata.Quote{Symbol: "AAPL", Price: 190.25})
	e := testEngine(WithMarketData(p))

	got := e.GenerateResponse(context.Background(), "what is the price of AAPL", nil, "")
	if !strings.Contains(got, "AAPL") || !strings.Contains(got, "$190.25") {
		t.Errorf("quote expected, got %q", got)
	}
}

func TestMarketDataPerformance(t *testing.T) {
	p := marketdata.NewStaticProvider()
	p.SetPerformance(marketdata.Performance{
		Symbol:    "VTI",
		ChangePct: 12.5,
		High:      260,
		Low:       210,
		AvgVolume: 3500000,
	})
	e := testEngine(WithMarketData(p))

	got := e.GenerateResponse(context.Background(), "how is the performance of VTI", nil, "")
	if !strings.Contains(got, "12.50%") || !strings.Contains(got, "$260.00") {
		t.Errorf("performance summary expected, got %q", got)
	}
}

func TestMarketDataUnknownSymbol(t *testing.T) {
	e := testEngine(WithMarketData(marketdata.NewStaticProvider()))
	got := e.GenerateResponse(context.Background(), "what is the price of ZZZQ", nil, "")
	if !strings.Contains(got, "couldn't retrieve the price for ZZZQ") {
		t.Errorf("polite failure expected, got %q", got)
	}
}

func TestMarketDataNoProvider(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "what is the price of AAPL", nil, "")
	if !strings.Contains(got, "don't have live market data") {
		t.Errorf("no-provider reply expected, got %q", got)
	}
}

func TestGlossaryPhraseMatch(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "i keep hearing about asset allocation", nil, "")
	if !strings.Contains(got, "distributed among different asset classes") {
		t.Errorf("glossary phrase match expected, got %q", got)
	}
}

func TestPersonalizedNetWorth(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "what is my net worth", testProfile(), "c1")
	if !strings.Contains(got, "$20,000.00") {
		t.Errorf("personalized net worth expected, got %q", got)
	}
}

func TestPersonalizedRequiresProfile(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "what is my net worth", nil, "c1")
	if strings.Contains(got, "$") {
		t.Errorf("no profile should mean no personalized numbers, got %q", got)
	}
}

func TestSummaryRequest(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "give me an overview", testProfile(), "c1")
	if !strings.Contains(got, "financial summary") || !strings.Contains(got, "$20,000.00") {
		t.Errorf("summary rendering expected, got %q", got)
	}
}

func TestRetrievalAboveThreshold(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "how to invest in mutual funds", nil, "")
	if !strings.Contains(got, "SIP") {
		t.Errorf("FAQ answer expected, got %q", got)
	}
}

func TestNonsenseFallsToFallback(t *testing.T) {
	e := testEngine()
	got := e.GenerateResponse(context.Background(), "purple elephants dance gracefully", nil, "")
	if got == "" {
		t.Fatal("fallback must never be empty")
	}
	found := false
	for _, f := range genericFallbacks {
		if got == f {
			found = true
		}
	}
	if !found {
		t.Errorf("generic fallback expected, got %q", got)
	}
}

func TestContextAwareFallback(t *testing.T) {
	e := testEngine()
	ctx := context.Background()

	// Seed topic history for this client.
	e.GenerateResponse(ctx, "how much debt do i have", testProfile(), "c7")
	got := e.GenerateResponse(ctx, "purple elephants dance gracefully", testProfile(), "c7")
	if !strings.Contains(got, "debt") {
		t.Errorf("fallback should reference recent topics, got %q", got)
	}
}

func TestResponsesNeverEmpty(t *testing.T) {
	e := testEngine()
	utterances := []string{
		"", "   ", "hello", "what", "??", "mutual fund",
		"tell me everything", "what is my net worth",
	}
	for _, u := range utterances {
		if got := e.GenerateResponse(context.Background(), u, nil, "c9"); got == "" {
			t.Errorf("empty response for utterance %q", u)
		}
	}
}
