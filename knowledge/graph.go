package knowledge

// TopicNode is one node of the topic graph: a definition plus the
// types, risks, and strategies associated with the topic.
type TopicNode struct {
	Definition string
	Types      []string
	Risks      []string
	Benefits   []string
	Strategies []string
}

// topicGraph is the flattened topic hierarchy. Keys are normalized
// term paths; nested topics are reachable both by their leaf name and
// by their full path, which replaces recursive traversal with a single
// map lookup.
var topicGraph = map[string]TopicNode{
	"stock": {
		Definition: "A stock represents ownership in a company and constitutes a claim on part of the company's assets and earnings.",
		Types:      []string{"common stock", "preferred stock"},
		Risks:      []string{"market risk", "liquidity risk", "concentration risk"},
		Strategies: []string{"value investing", "growth investing", "dividend investing"},
	},
	"bond": {
		Definition: "A bond is a fixed income instrument representing a loan made by an investor to a borrower.",
		Types:      []string{"government bonds", "corporate bonds", "municipal bonds"},
		Risks:      []string{"interest rate risk", "credit risk", "inflation risk"},
		Strategies: []string{"laddering", "barbell strategy", "bullet strategy"},
	},
	"mutual fund": {
		Definition: "A mutual fund is a pooled investment vehicle that collects money from many investors to invest in securities like stocks, bonds, and other assets.",
		Types:      []string{"equity funds", "debt funds", "balanced funds", "index funds", "money market funds"},
		Risks:      []string{"market risk", "credit risk", "liquidity risk", "interest rate risk"},
		Benefits:   []string{"diversification", "professional management", "liquidity", "affordability"},
		Strategies: []string{"systematic investment plan (SIP)", "lump sum investment", "systematic withdrawal plan (SWP)"},
	},
}

// graphAliases maps alternate paths onto canonical graph keys, so
// "investments stocks" and "stocks" resolve to the same node.
var graphAliases = map[string]string{
	"investment stock":         "stock",
	"investments stocks":       "stock",
	"investment bond":          "bond",
	"investments bonds":        "bond",
	"investment mutual fund":   "mutual fund",
	"investments mutual funds": "mutual fund",
	"mutual funds":             "mutual fund",
}

// goalStrategies is the fixed strategy-suggestion table keyed by goal
// phrase. Matching is substring-based on the normalized goal; the
// slice order decides which phrase wins when a goal mentions several.
var goalStrategies = []struct {
	Phrase   string
	Strategy string
}{
	{"retirement", "Maximize contributions to tax-advantaged accounts like 401(k)s and IRAs, and maintain a diversified portfolio."},
	{"debt", "Focus on paying off high-interest debt first (debt avalanche method) or smallest balances first (debt snowball method)."},
	{"saving", "Follow the 50/30/20 budget rule (50% needs, 30% wants, 20% savings) and automate your savings."},
	{"college", "Consider a 529 plan for tax-advantaged education savings or Coverdell ESA for more investment options."},
	{"home", "Save for a 20% down payment to avoid PMI, get pre-approved for a mortgage, and consider first-time homebuyer programs."},
}
