// Package retrieval ranks catalog documents against free-text queries
// using a TF-IDF term-weight model and cosine similarity.
package retrieval

import (
	"sort"

	"github.com/retail-insight/genie/internal/domain"
)

// NoAnswerFallback is returned by Answer when no document matches.
const NoAnswerFallback = "I'm sorry, I couldn't find information on that topic."

// Service is the retrieval engine. It owns a private copy of the catalog
// and the term-weight model built from it. Both are frozen after New, so
// a Service is safe to share across concurrent readers without locking.
type Service struct {
	docs    []domain.Document
	model   *vectorizer
	vectors []vector
}

// New builds an engine over the given documents. The collection may be
// empty; every query then yields empty results. Documents are deep-copied
// so callers cannot alias engine state.
func New(docs []domain.Document) *Service {
	owned := make([]domain.Document, len(docs))
	corpus := make([]string, len(docs))
	for i, d := range docs {
		owned[i] = d.Clone()
		corpus[i] = owned[i].Text()
	}

	model := fitVectorizer(corpus)
	vectors := make([]vector, len(corpus))
	for i, text := range corpus {
		vectors[i] = model.transform(text)
	}

	return &Service{docs: owned, model: model, vectors: vectors}
}

// Retrieve returns up to k documents ranked by cosine similarity to the
// query, best first. Ties are broken by ascending document index. Entries
// with non-positive scores are dropped, so a query sharing no vocabulary
// term with the catalog yields an empty result. An empty query or k <= 0
// yields an empty result as well; none of these are errors.
func (s *Service) Retrieve(query string, k int) []domain.Match {
	if query == "" || k <= 0 {
		return nil
	}

	qv := s.model.transform(query)
	if len(qv) == 0 {
		return nil
	}

	matches := make([]domain.Match, 0, len(s.vectors))
	for i, dv := range s.vectors {
		if score := qv.dot(dv); score > 0 {
			matches = append(matches, domain.Match{Index: i, Score: score})
		}
	}

	// Stable sort keeps equal-score matches in ascending index order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// Answer composes a one-line answer from the best-matching document, in
// the form "<title>: <description>". It never fabricates content: when
// nothing matches it returns NoAnswerFallback.
func (s *Service) Answer(query string) string {
	matches := s.Retrieve(query, 1)
	if len(matches) == 0 {
		return NoAnswerFallback
	}
	doc := s.docs[matches[0].Index]
	return doc.Title + ": " + doc.Description
}

// Document returns the document at the given catalog position.
// The index must come from a Match produced by this engine.
func (s *Service) Document(index int) domain.Document {
	return s.docs[index]
}

// DocumentCount returns the number of indexed documents.
func (s *Service) DocumentCount() int {
	return len(s.docs)
}

// VocabularySize returns the number of distinct terms in the model.
func (s *Service) VocabularySize() int {
	return s.model.dimensions()
}
