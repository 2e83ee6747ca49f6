package eval

import "github.com/retail-insight/genie/internal/domain"

// Retriever is the engine contract the harness drives. The harness sees
// ranked matches only, never the model internals.
type Retriever interface {
	Retrieve(query string, k int) []domain.Match
}
