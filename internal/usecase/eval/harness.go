// Package eval measures ranking quality of the retrieval engine against a
// labeled query set. The sample set is tiny, so the numbers are a
// demonstration rather than a rigorous benchmark.
package eval

// Query pairs a query text with the catalog position of its single
// relevant document.
type Query struct {
	Text          string
	RelevantIndex int
}

// SampleQueries labels the five-product sample catalog, one query per
// document.
var SampleQueries = []Query{
	{Text: "battery life of pro laptop", RelevantIndex: 0},
	{Text: "features of smartphone", RelevantIndex: 1},
	{Text: "noise cancellation earbuds", RelevantIndex: 2},
	{Text: "tablet display size", RelevantIndex: 3},
	{Text: "gaming console graphics", RelevantIndex: 4},
}

// PrecisionAtK reports whether the relevant document appears within the
// first k entries of the ranking: 1.0 if it does, 0.0 otherwise. k = 0
// always yields 0.0.
func PrecisionAtK(ranking []int, relevantIndex, k int) float64 {
	if k > len(ranking) {
		k = len(ranking)
	}
	for _, idx := range ranking[:max(k, 0)] {
		if idx == relevantIndex {
			return 1.0
		}
	}
	return 0.0
}

// Evaluate returns the mean precision@k of the engine over the labeled
// queries. An empty query set yields 0.0.
func Evaluate(r Retriever, queries []Query, k int) float64 {
	if len(queries) == 0 {
		return 0.0
	}

	var sum float64
	for _, q := range queries {
		matches := r.Retrieve(q.Text, k)
		ranking := make([]int, len(matches))
		for i, m := range matches {
			ranking[i] = m.Index
		}
		sum += PrecisionAtK(ranking, q.RelevantIndex, k)
	}
	return sum / float64(len(queries))
}
