package health

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the service answers but some component is off.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks over the retrieval engine.
type Service struct {
	engine EngineInfo
}

// New creates a Service.
func New(engine EngineInfo) *Service {
	return &Service{engine: engine}
}

// Check reports whether the catalog holds documents and the term-weight
// model has a vocabulary. An empty catalog is degraded, not fatal: every
// query still gets a well-defined (empty or fallback) response.
func (s *Service) Check() Report {
	checks := make(map[string]CheckResult)

	if s.engine.DocumentCount() > 0 {
		checks["catalog"] = CheckOK
	} else {
		checks["catalog"] = CheckError
	}

	if s.engine.VocabularySize() > 0 {
		checks["index"] = CheckOK
	} else {
		checks["index"] = CheckError
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
