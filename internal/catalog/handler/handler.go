package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/daroscoffee/storefront-service/internal/catalog"
	"github.com/daroscoffee/storefront-service/internal/catalog/dto"
	"github.com/daroscoffee/storefront-service/pkg/logger"
)

type CatalogHandler struct {
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: log}
}

func (h *CatalogHandler) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &dto.CatalogFilters{
		Query:    q.Get("q"),
		Category: catalog.CategoryID(q.Get("category")),
		Event:    q.Get("event"),
	}

	view, err := h.uc.Browse(r.Context(), filters)
	if err != nil {
		h.logger.Error("failed to browse catalog", zap.Error(err))
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *CatalogHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Reload(r.Context()); err != nil {
		h.logger.Error("failed to reload catalog", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.uc.Categories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := h.uc.Events(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *CatalogHandler) HotDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := h.uc.HotDeals(r.Context(), r.URL.Query().Get("event"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, deals)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
