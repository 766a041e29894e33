package handler

import (
	"encoding/json"
	"net/http"

	"github.com/daroscoffee/storefront-service/internal/carousel"
)

type CarouselHandler struct {
	c *carousel.Carousel
}

func NewCarouselHandler(c *carousel.Carousel) *CarouselHandler {
	return &CarouselHandler{c: c}
}

func (h *CarouselHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.c.Snapshot())
}

func (h *CarouselHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Direction carousel.Direction `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Ignored calls (mid-transition) still return the current state;
	// the lock is behavior, not an error.
	h.c.Advance(req.Direction)
	writeJSON(w, http.StatusOK, h.c.Snapshot())
}

func (h *CarouselHandler) Goto(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.c.GotoIndex(req.Index)
	writeJSON(w, http.StatusOK, h.c.Snapshot())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
