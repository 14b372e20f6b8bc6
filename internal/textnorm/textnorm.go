// Package textnorm provides the text normalization shared by the
// knowledge store and the chatbot cascade: lowercasing, punctuation
// stripping, stopword removal, and a light lemmatizer.
package textnorm

import (
	"strings"
	"unicode"
)

// stopwords is a fixed English stopword set. It covers the function
// words that dominate short finance questions; anything rarer is kept
// as signal.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
		"am", "do", "does", "did", "have", "has", "had", "will", "would",
		"shall", "should", "can", "could", "may", "might", "must",
		"i", "me", "my", "mine", "we", "us", "our", "ours", "you", "your",
		"yours", "he", "him", "his", "she", "her", "hers", "it", "its",
		"they", "them", "their", "theirs", "what", "which", "who", "whom",
		"this", "that", "these", "those", "and", "or", "but", "if", "then",
		"else", "when", "where", "why", "how", "of", "in", "on", "at", "by",
		"for", "with", "about", "to", "from", "as", "into", "through",
		"during", "before", "after", "above", "below", "up", "down", "out",
		"off", "over", "under", "again", "further", "here", "there", "all",
		"any", "both", "each", "few", "more", "most", "other", "some",
		"such", "no", "nor", "not", "only", "own", "same", "so", "than",
		"too", "very", "just", "dont", "don", "t", "s",
	} {
		stopwords[w] = struct{}{}
	}
}

// Normalize lowercases s, strips punctuation, and collapses whitespace.
// Used for glossary and FAQ keys so that "Mutual   Fund?" and
// "mutual fund" hit the same entry.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokens normalizes s and returns its lemmatized tokens with stopwords
// removed. Token order is preserved.
func Tokens(s string) []string {
	fields := strings.Fields(Normalize(s))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, skip := stopwords[f]; skip {
			continue
		}
		out = append(out, Lemma(f))
	}
	return out
}

// Lemma reduces an already-lowercased word to a base form using suffix
// rules. This is deliberately conservative: it only strips plural and
// common verbal endings, which is enough for the token-bag overlap the
// retrieval layer needs.
func Lemma(w string) string {
	switch {
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case len(w) > 4 && strings.HasSuffix(w, "ing"):
		stem := w[:len(w)-3]
		if hasVowel(stem) {
			return stem
		}
	case len(w) > 3 && strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case len(w) > 3 && strings.HasSuffix(w, "ed"):
		stem := w[:len(w)-2]
		if hasVowel(stem) {
			return stem
		}
	case len(w) > 3 && strings.HasSuffix(w, "es") && !strings.HasSuffix(w, "ses"):
		return w[:len(w)-1]
	case len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us"):
		return w[:len(w)-1]
	}
	return w
}

func hasVowel(s string) bool {
	return strings.ContainsAny(s, "aeiouy")
}

// ContainsWord reports whether kw occurs in msg on word boundaries.
// Multi-word keywords match as phrases. Plain substring matching would
// let "hi" fire inside "this" or "owe" inside "lower".
func ContainsWord(msg, kw string) bool {
	padded := " " + foldSpaces(msg) + " "
	return strings.Contains(padded, " "+kw+" ")
}

// foldSpaces turns punctuation into spaces so "hello!" matches the
// keyword "hello". Parentheses survive for terms like "401(k)".
func foldSpaces(msg string) string {
	var b strings.Builder
	b.Grow(len(msg))
	for _, r := range msg {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '(' || r == ')' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
