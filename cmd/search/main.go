package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/L8ton-crypto/appian-cheat/internal/app"
	"github.com/L8ton-crypto/appian-cheat/internal/catalog"
	"github.com/L8ton-crypto/appian-cheat/internal/httputil"
	"github.com/L8ton-crypto/appian-cheat/internal/search"
)

type searchRequest struct {
	Query     string    `json:"query" validate:"omitempty,min=3,max=500"`
	Embedding []float32 `json:"embedding" validate:"omitempty,min=1"`
	Limit     *int      `json:"limit" validate:"omitempty,min=1,max=100"`
}

// searchResponse is one result row, enriched from the static catalog when the
// parsed name matches a function entry exactly.
type searchResponse struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Content    string  `json:"content"`
	Similarity float32 `json:"similarity"`
	Syntax     string  `json:"syntax,omitempty"`
	Example    string  `json:"example,omitempty"`
	DocURL     string  `json:"docUrl,omitempty"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)

	r.Post("/search", searchHandler(deps))
	r.Get("/catalog/functions", functionsHandler())
	r.Get("/catalog/recipes", recipesHandler())
	r.Get("/catalog/categories", categoriesHandler())
	r.Get("/catalog/connected-systems", connectedSystemsHandler())
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	deps.Log.Info("catalog service listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		deps.Log.Error("server error", "err", err)
	}
}

func searchHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if req.Query == "" && len(req.Embedding) == 0 {
			httputil.WriteError(w, http.StatusBadRequest, "query or embedding required")
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		limit := deps.Config.SearchLimit
		if req.Limit != nil {
			limit = *req.Limit
		}

		results, err := deps.Search.Search(r.Context(), search.Query{
			Text:      req.Query,
			Embedding: req.Embedding,
			Limit:     limit,
		})
		if err != nil {
			if errors.Is(err, search.ErrInvalidArgument) {
				httputil.ValidationError(deps.Log, w, err)
				return
			}
			// Embedding or store detail stays in the log; the client sees one
			// generic failure.
			httputil.Fail(deps.Log, w, "Search failed", err, http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, enrich(results))
	}
}

// enrich attaches syntax, example, and doc link from the static catalog to
// results whose parsed name is an exact catalog hit.
func enrich(results []search.Result) []searchResponse {
	out := make([]searchResponse, 0, len(results))
	for _, res := range results {
		row := searchResponse{
			Name:       res.Name,
			Category:   res.Category,
			Content:    res.Content,
			Similarity: res.Similarity,
		}
		if fn := catalog.Lookup(res.Name); fn != nil {
			row.Syntax = fn.Syntax
			row.Example = fn.Example
			row.DocURL = fn.DocURL
		}
		out = append(out, row)
	}
	return out
}

func functionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fns := catalog.FilterFunctions(r.URL.Query().Get("category"), r.URL.Query().Get("q"))
		if fns == nil {
			fns = []catalog.Function{}
		}
		httputil.WriteJSON(w, http.StatusOK, fns)
	}
}

func recipesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes := catalog.FilterRecipes(r.URL.Query().Get("category"), r.URL.Query().Get("q"))
		if recipes == nil {
			recipes = []catalog.Recipe{}
		}
		httputil.WriteJSON(w, http.StatusOK, recipes)
	}
}

func categoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, catalog.Categories)
	}
}

func connectedSystemsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, catalog.ConnectedSystems)
	}
}
