package knowledge

import (
	"fmt"
	"strings"

	"github.com/finsage/finsage/internal/textnorm"
)

// DefaultThreshold is the minimum cosine similarity for a FAQ match.
// Below it retrieval reports no match rather than a best-effort answer.
const DefaultThreshold = 0.6

// Store bundles the glossary, topic graph, and FAQ corpus behind
// normalized-key and similarity lookup. Build it once at process start;
// all lookup data is immutable afterwards, so a single Store is safe
// for concurrent use.
type Store struct {
	terms     map[string]Term // normalized name → entry
	graph     map[string]TopicNode
	threshold float64

	// TF-IDF retrieval state over the FAQ corpus, prepared at load.
	faqs    []FAQ
	idf     map[string]float64
	faqVecs []map[string]float64 // L2-normalized question vectors
}

// NewStore loads the static knowledge and prepares the retrieval
// index.
func NewStore() *Store {
	s := &Store{
		terms:     make(map[string]Term, len(glossary)),
		graph:     make(map[string]TopicNode, len(topicGraph)+len(graphAliases)),
		threshold: DefaultThreshold,
		faqs:      faqCorpus,
	}

	for _, t := range glossary {
		s.terms[textnorm.Normalize(t.Name)] = t
	}

	// Flatten the topic hierarchy: canonical keys plus path aliases.
	for key, node := range topicGraph {
		s.graph[key] = node
	}
	for alias, key := range graphAliases {
		if node, ok := topicGraph[key]; ok {
			s.graph[alias] = node
		}
	}

	s.buildIndex()
	return s
}

// SetThreshold overrides the retrieval acceptance threshold. Call it
// during setup, before the store is shared across goroutines.
func (s *Store) SetThreshold(v float64) {
	if v > 0 && v <= 1 {
		s.threshold = v
	}
}

// Terms returns the glossary in its fixed display order.
func (s *Store) Terms() []Term {
	return glossary
}

// Definition resolves a term to its definition. It tries the glossary,
// then the FAQ corpus keys, then the topic graph with a singular
// fallback. The empty string means the term is unknown, which callers
// turn into a polite response, never a failure.
func (s *Store) Definition(term string) string {
	key := textnorm.Normalize(term)
	if key == "" {
		return ""
	}

	if t, ok := s.terms[key]; ok {
		return t.Definition
	}

	// A FAQ whose question contains or ends with the term doubles as a
	// definition ("mutual fund" → the standalone corpus entry).
	for _, f := range s.faqs {
		q := textnorm.Normalize(f.Question)
		if strings.Contains(q, key) || strings.HasSuffix(q, key) {
			return f.Answer
		}
	}

	if node, ok := s.lookupTopic(key); ok {
		return node.Definition
	}
	return ""
}

// Topic returns the graph node for a term, applying the same singular
// fallback as Definition.
func (s *Store) Topic(term string) (TopicNode, bool) {
	return s.lookupTopic(textnorm.Normalize(term))
}

func (s *Store) lookupTopic(key string) (TopicNode, bool) {
	if node, ok := s.graph[key]; ok {
		return node, true
	}
	// Singular fallback: "stocks" → "stock", "mutual funds" → "mutual fund".
	if strings.HasSuffix(key, "s") {
		if node, ok := s.graph[strings.TrimSuffix(key, "s")]; ok {
			return node, true
		}
	}
	return TopicNode{}, false
}

// Compare renders a side-by-side definition of two terms. It returns
// "" when either term is unknown.
func (s *Store) Compare(term1, term2 string) string {
	def1 := s.Definition(term1)
	def2 := s.Definition(term2)
	if def1 == "" || def2 == "" {
		return ""
	}
	return fmt.Sprintf("Comparison of %s and %s:\n- %s: %s\n- %s: %s",
		term1, term2, term1, def1, term2, def2)
}

// Strategy suggests an approach for a financial goal, first from the
// topic graph, then from the fixed goal table. "" means no suggestion.
func (s *Store) Strategy(goal string) string {
	key := textnorm.Normalize(goal)
	if key == "" {
		return ""
	}

	if node, ok := s.lookupTopic(key); ok && len(node.Strategies) > 0 {
		return fmt.Sprintf("For %s, consider these strategies: %s.",
			goal, strings.Join(node.Strategies, ", "))
	}

	lemKey := strings.Join(textnorm.Tokens(key), " ")
	for _, g := range goalStrategies {
		if strings.Contains(key, g.Phrase) || strings.Contains(lemKey, g.Phrase) {
			return g.Strategy
		}
	}
	return ""
}
