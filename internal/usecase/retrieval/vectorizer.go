package retrieval

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches runs of two or more letters or digits on lowercased
// text. Single-character fragments are noise for product queries.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]{2,}`)

// vectorizer is a term-weight model fitted once over the catalog corpus.
// It is a pure function of the corpus at fit time and never mutated
// afterwards: query-time transforms use the frozen vocabulary, and terms
// outside it contribute nothing.
type vectorizer struct {
	vocabulary map[string]int // normalized term -> dimension
	idf        []float64      // per-dimension corpus weight
}

// fitVectorizer builds the vocabulary and smoothed inverse document
// frequencies from the corpus. An empty corpus yields an empty model whose
// transforms are all zero vectors.
func fitVectorizer(corpus []string) *vectorizer {
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, term := range tokenize(text) {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	// Sort terms so dimension assignment is deterministic across runs.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(corpus))
	for dim, term := range terms {
		v.vocabulary[term] = dim
		v.idf[dim] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// transform projects text into the model's vector space: term frequency
// times corpus weight, L2-normalized. Out-of-vocabulary terms are ignored.
func (v *vectorizer) transform(text string) vector {
	vec := make(vector)
	for _, term := range tokenize(text) {
		if dim, ok := v.vocabulary[term]; ok {
			vec[dim] += v.idf[dim]
		}
	}
	vec.normalize()
	return vec
}

// dimensions returns the vocabulary size.
func (v *vectorizer) dimensions() int {
	return len(v.vocabulary)
}

// tokenize lowercases text, splits it on non-alphanumeric boundaries and
// drops stop words. Deterministic and shared by fit and transform.
func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
