package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nidhogg/concept-lab/internal/gateway"
	"github.com/nidhogg/concept-lab/internal/graph"
	"github.com/nidhogg/concept-lab/internal/knowledge"
	"github.com/nidhogg/concept-lab/internal/service"
	"go.uber.org/zap"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	svc    *service.ExplanationService
	restGW *gateway.RESTAdapter
	gw     *gateway.Gateway
	logger *zap.Logger
}

// NewHandler creates a new API handler. restGW and gw may be nil when the
// chat gateway is not running.
func NewHandler(
	svc *service.ExplanationService,
	restGW *gateway.RESTAdapter,
	gw *gateway.Gateway,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		svc:    svc,
		restGW: restGW,
		gw:     gw,
		logger: logger,
	}
}

// Router builds the chi router with all routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.healthCheck)
		r.Get("/concepts", h.listConcepts)
		r.Get("/categories", h.listCategories)
		r.Post("/explain", h.explain)
		r.Get("/graph", h.getGraph)

		// Gateway routes
		if h.restGW != nil {
			r.Mount("/gateway/rest", h.restGW.Routes())
		}
		r.Get("/gateway/status", h.gatewayStatus)
	})

	return r
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "concept-lab"})
}

type indexedName struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

func (h *Handler) listConcepts(w http.ResponseWriter, r *http.Request) {
	concepts := knowledge.Concepts()
	out := make([]indexedName, len(concepts))
	for i, c := range concepts {
		out[i] = indexedName{Index: i + 1, Name: string(c)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats := knowledge.Categories()
	out := make([]indexedName, len(cats))
	for i, c := range cats {
		out[i] = indexedName{Index: i + 1, Name: string(c)}
	}
	writeJSON(w, http.StatusOK, out)
}

// explainRequest mirrors the service boundary: concept is a menu number or
// "quit", system is "human" or "ai", category is a category name.
type explainRequest struct {
	Concept  json.RawMessage `json:"concept"`
	System   string          `json:"system"`
	Category string          `json:"category"`
}

// explain always answers 200; invalid selections come back as result text.
func (h *Handler) explain(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result := h.svc.Explain(r.Context(), selectorFromJSON(req.Concept), req.System, knowledge.Category(req.Category))
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}

// selectorFromJSON accepts 3 or "3" or "quit".
func selectorFromJSON(raw json.RawMessage) service.Selector {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return service.Index(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return service.ParseSelector(s)
	}
	return service.Index(0)
}

// getGraph builds the AI acquisition graph. concept may be a name or a menu
// number; unknown names use the fallback tables like the models do.
func (h *Handler) getGraph(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := strings.TrimSpace(q.Get("concept"))
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "concept is required"})
		return
	}
	concept := knowledge.Concept(strings.ToLower(raw))
	if i, err := strconv.Atoi(raw); err == nil {
		c, ok := knowledge.ConceptAt(i)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": service.InvalidConcept})
			return
		}
		concept = c
	}
	category := knowledge.Category(q.Get("category"))

	g := h.svc.Graph(concept, category)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"title": graph.Title("AI", concept, category),
		"graph": g,
	})
}

func (h *Handler) gatewayStatus(w http.ResponseWriter, r *http.Request) {
	if h.gw == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "gateway not initialized"})
		return
	}
	writeJSON(w, http.StatusOK, h.gw.StatusAll())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
