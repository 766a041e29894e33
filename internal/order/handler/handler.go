package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/daroscoffee/storefront-service/internal/order"
	"github.com/daroscoffee/storefront-service/internal/order/dto"
	orderUC "github.com/daroscoffee/storefront-service/internal/order/usecase"
	"github.com/daroscoffee/storefront-service/pkg/logger"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var input dto.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.uc.Checkout(r.Context(), chi.URLParam(r, "cartID"), &input)
	if err != nil {
		switch {
		case errors.Is(err, orderUC.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, orderUC.ErrOrderInFlight):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, orderUC.ErrDispatchFail):
			h.logger.Error("checkout dispatch failed", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			h.logger.Error("checkout failed", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
