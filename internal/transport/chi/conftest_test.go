package chi

import (
	"net/http/httptest"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/retail-insight/genie/internal/domain"
	"github.com/retail-insight/genie/internal/usecase/health"
	"github.com/retail-insight/genie/internal/usecase/retrieval"
)

// sampleCatalog mirrors data/docs.json.
func sampleCatalog() []domain.Document {
	return []domain.Document{
		{Title: "UltraBook Pro Laptop", Description: "A lightweight pro laptop with a 14-inch display, 16GB RAM and an all-day battery life of up to 18 hours."},
		{Title: "Galaxy X Smartphone", Description: "A flagship smartphone with advanced camera features, a 6.5-inch OLED screen and fast wireless charging."},
		{Title: "SoundPods Wireless Earbuds", Description: "True wireless earbuds with active noise cancellation, touch controls and a compact charging case."},
		{Title: "SlateTab 11 Tablet", Description: "A slim tablet with an 11-inch liquid retina display, stylus support and quad speakers."},
		{Title: "NovaStation 5 Gaming Console", Description: "A next generation gaming console with ray-traced graphics, ultra-fast SSD storage and 4K gameplay."},
	}
}

// newTestServer wires the API over the sample catalog behind an httptest server.
func newTestServer(t *testing.T, docs []domain.Document) *httptest.Server {
	t.Helper()

	engine := retrieval.New(docs)
	srv := NewServer(engine, health.New(engine), zap.NewNop(), 3, 20)

	r := chirouter.NewRouter()
	srv.Routes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}
