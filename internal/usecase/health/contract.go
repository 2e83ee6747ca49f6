package health

// EngineInfo exposes the retrieval engine facts health checks need.
type EngineInfo interface {
	DocumentCount() int
	VocabularySize() int
}
