package knowledge

import (
	"math"

	"github.com/finsage/finsage/internal/textnorm"
)

// buildIndex computes smoothed IDF weights over the FAQ questions and
// caches an L2-normalized TF-IDF vector per question. With vectors
// pre-normalized, cosine similarity at query time is a dot product.
func (s *Store) buildIndex() {
	docs := make([][]string, len(s.faqs))
	df := make(map[string]int)
	for i, f := range s.faqs {
		docs[i] = textnorm.Tokens(f.Question)
		seen := make(map[string]struct{}, len(docs[i]))
		for _, tok := range docs[i] {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	n := float64(len(docs))
	s.idf = make(map[string]float64, len(df))
	for tok, count := range df {
		// Smoothed IDF so corpus-wide tokens still carry some weight.
		s.idf[tok] = math.Log((1+n)/(1+float64(count))) + 1
	}

	s.faqVecs = make([]map[string]float64, len(docs))
	for i, toks := range docs {
		s.faqVecs[i] = s.vectorize(toks)
	}
}

// vectorize builds an L2-normalized TF-IDF vector from a token bag.
// Tokens outside the corpus vocabulary are dropped, matching the
// fit-then-transform behavior of the retrieval model this replaces.
func (s *Store) vectorize(tokens []string) map[string]float64 {
	vec := make(map[string]float64)
	for _, tok := range tokens {
		if idf, ok := s.idf[tok]; ok {
			vec[tok] += idf
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for tok := range vec {
		vec[tok] /= norm
	}
	return vec
}

// BestFAQ returns the best-matching FAQ for an utterance, its cosine
// score, and whether the score clears the acceptance threshold. Ties
// keep the earliest question in the fixed corpus order.
func (s *Store) BestFAQ(utterance string) (FAQ, float64, bool) {
	query := s.vectorize(textnorm.Tokens(utterance))
	if len(query) == 0 {
		return FAQ{}, 0, false
	}

	bestIdx := -1
	bestScore := 0.0
	for i, vec := range s.faqVecs {
		score := dot(query, vec)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	if bestIdx < 0 || bestScore <= s.threshold {
		return FAQ{}, bestScore, false
	}
	return s.faqs[bestIdx], bestScore, true
}

func dot(a, b map[string]float64) float64 {
	// Iterate the smaller vector.
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for tok, w := range a {
		sum += w * b[tok]
	}
	return sum
}
