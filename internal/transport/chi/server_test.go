package chi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/retail-insight/genie/internal/usecase/retrieval"
)

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestSearch_ReturnsRankedResults(t *testing.T) {
	ts := newTestServer(t, sampleCatalog())

	resp := postJSON(t, ts.URL+"/search", SearchRequest{Query: "battery life of pro laptop"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody[SearchResponse](t, resp)
	if len(body.Results) == 0 {
		t.Fatal("expected results")
	}
	top := body.Results[0]
	if top.Index != 0 {
		t.Errorf("top result index = %d, want 0 (laptop)", top.Index)
	}
	if top.Title != "UltraBook Pro Laptop" {
		t.Errorf("top result title = %q", top.Title)
	}
	if top.Score <= 0 || top.Score > 1 {
		t.Errorf("top result score = %v, want within (0, 1]", top.Score)
	}
	if len(body.Results) > 3 {
		t.Errorf("default k is 3, got %d results", len(body.Results))
	}
}

func TestSearch_ExplicitK(t *testing.T) {
	ts := newTestServer(t, sampleCatalog())

	one := 1
	resp := postJSON(t, ts.URL+"/search", SearchRequest{Query: "wireless charging", K: &one})
	body := decodeBody[SearchResponse](t, resp)
	if len(body.Results) != 1 {
		t.Errorf("expected 1 result with k=1, got %d", len(body.Results))
	}
}

func TestSearch_KZeroYieldsEmpty(t *testing.T) {
	ts := newTestServer(t, sampleCatalog())

	zero := 0
	resp := postJSON(t, ts.URL+"/search", SearchRequest{Query: "laptop", K: &zero})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody[SearchResponse](t, resp)
	if len(body.Results) != 0 {
		t.Errorf("expected empty results with k=0, got %d", len(body.Results))
	}
}

func TestSearch_NegativeKRejected(t *testing.T) {
	ts := newTestServer(t, sampleCatalog())

	neg := -1
	resp := postJSON(t, ts.URL+"/search", SearchRequest{Query: "laptop", K: &neg})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeBody[ErrorResponse](t, resp)
	if body.Code != codeValidationFailed {
		t.Errorf("error code = %q, want %q", body.Code, codeValidationFailed)
	}
}

func TestSearch_EmptyQueryIsValid(t *testing.T) {
	ts := newTestServer(t, sampleCatalog())

	resp := postJSON(t, ts.URL+"/search", SearchRequest{Query: ""})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody[SearchResponse](t, resp)
	if len(body.Results) != 0 {
		t.Errorf("expected empty results for empty query, got %d", len(body.Results))
	}
}

func TestSearch_InvalidBody(t *testing.T) {
	ts := newTestServer(t, sampleCatalog())

	resp, err := http.Post(ts.URL+"/search", "application/json", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAnswer_ComposesTopDocument(t *testing.T) {
	docs := sampleCatalog()
	ts := newTestServer(t, docs)

	resp := postJSON(t, ts.URL+"/answer", AnswerRequest{Query: "noise cancellation earbuds"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody[AnswerResponse](t, resp)
	want := docs[2].Title + ": " + docs[2].Description
	if body.Answer != want {
		t.Errorf("answer = %q, want %q", body.Answer, want)
	}
}

func TestAnswer_FallbackOnNoMatch(t *testing.T) {
	ts := newTestServer(t, sampleCatalog())

	resp := postJSON(t, ts.URL+"/answer", AnswerRequest{Query: "quantum entanglement"})
	body := decodeBody[AnswerResponse](t, resp)
	if body.Answer != retrieval.NoAnswerFallback {
		t.Errorf("answer = %q, want fallback", body.Answer)
	}
}

func TestHealth_OK(t *testing.T) {
	ts := newTestServer(t, sampleCatalog())

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody[HealthResponse](t, resp)
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
	if body.Checks["catalog"] != "ok" || body.Checks["index"] != "ok" {
		t.Errorf("unexpected checks: %v", body.Checks)
	}
}

func TestHealth_DegradedOnEmptyCatalog(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body := decodeBody[HealthResponse](t, resp)
	if body.Status != "degraded" {
		t.Errorf("status = %q, want degraded", body.Status)
	}
}
