package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/daroscoffee/storefront-service/internal/cart"
	"github.com/daroscoffee/storefront-service/internal/cart/dto"
	cartUC "github.com/daroscoffee/storefront-service/internal/cart/usecase"
	"github.com/daroscoffee/storefront-service/pkg/logger"
)

type CartHandler struct {
	uc     cart.UseCase
	logger logger.ZapLogger
}

func NewCartHandler(uc cart.UseCase, log logger.ZapLogger) *CartHandler {
	return &CartHandler{uc: uc, logger: log}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.uc.Get(r.Context(), chi.URLParam(r, "cartID"))
	if err != nil {
		h.logger.Error("failed to load cart", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var input dto.AddLineInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.uc.Add(r.Context(), chi.URLParam(r, "cartID"), &input)
	if err != nil {
		if errors.Is(err, cartUC.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("failed to add cart line", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *CartHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.uc.UpdateQuantity(r.Context(), chi.URLParam(r, "cartID"), chi.URLParam(r, "lineID"), input.Quantity)
	if err != nil {
		h.logger.Error("failed to update cart line", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	view, err := h.uc.Remove(r.Context(), chi.URLParam(r, "cartID"), chi.URLParam(r, "lineID"))
	if err != nil {
		h.logger.Error("failed to remove cart line", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Clear(r.Context(), chi.URLParam(r, "cartID")); err != nil {
		h.logger.Error("failed to clear cart", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
