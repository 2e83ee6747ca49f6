package domain

// Match is one ranked retrieval hit: a catalog position and its cosine
// similarity to the query. Scores lie in (0, 1] for normalized vectors.
type Match struct {
	Index int
	Score float64
}
