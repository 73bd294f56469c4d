package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"buyurtma/internal/core"
	"buyurtma/internal/orders"
)

// orderPayload is the request body for create and edit. The id comes from
// the path on edits and is assigned by the server on creates.
type orderPayload struct {
	OrderDate       string      `json:"orderDate"`
	DiscountPercent string      `json:"discountPercent"`
	Items           []core.Item `json:"items"`
}

func (p orderPayload) toOrder(id string) core.Order {
	return core.Order{
		ID:              id,
		Date:            core.ParseDate(strings.TrimSpace(p.OrderDate)),
		DiscountPercent: strings.TrimSpace(p.DiscountPercent),
		Items:           p.Items,
	}
}

type summaryResponse struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Orders   int     `json:"orders"`
	Revenue  float64 `json:"revenue"`
	Discount float64 `json:"discount"`
	GiftCost float64 `json:"giftCost"`

	// Display-formatted figures for the summary screen.
	RevenueDisplay  string `json:"revenueDisplay"`
	DiscountDisplay string `json:"discountDisplay"`
	GiftCostDisplay string `json:"giftCostDisplay"`
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	collection := s.orders.ListOrders()

	// Newest first, matching the list screen. Unknown dates sink to the end.
	sort.SliceStable(collection, func(i, j int) bool {
		return collection[i].Date.After(collection[j].Date.Time)
	})

	writeJSON(w, http.StatusOK, collection)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload orderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	saved, err := s.orders.CreateOrder(r.Context(), payload.toOrder(""))
	if err != nil {
		s.writeOrderError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload orderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order := payload.toOrder(id)
	if err := s.orders.UpdateOrder(r.Context(), order); err != nil {
		s.writeOrderError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.orders.DeleteOrder(r.Context(), id); err != nil {
		s.writeOrderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	// No month chosen yet means the current calendar month.
	month := int(now.Month())

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			month = m
		}
	}

	// Month 0 selects the whole year; anything else out of range falls back
	// to the current month.
	if month != core.WholeYear && (month < 1 || month > 12) {
		slog.WarnContext(r.Context(), "Invalid month parameter",
			"year", year, "month", month, "corrected_to", int(now.Month()))
		month = int(now.Month())
	}

	sum := s.orders.Summary(year, month)
	writeJSON(w, http.StatusOK, summaryResponse{
		Year:            sum.Year,
		Month:           sum.Month,
		Orders:          sum.Orders,
		Revenue:         sum.Revenue,
		Discount:        sum.Discount,
		GiftCost:        sum.GiftCost,
		RevenueDisplay:  FormatNumber(sum.Revenue),
		DiscountDisplay: FormatNumber(sum.Discount),
		GiftCostDisplay: FormatNumber(sum.GiftCost),
	})
}

// writeOrderError maps service errors onto status codes.
func (s *Server) writeOrderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, orders.ErrNotFound):
		writeError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, core.ErrNoItems),
		errors.Is(err, core.ErrIncompleteItem),
		errors.Is(err, core.ErrInvalidDiscount),
		errors.Is(err, core.ErrMissingID):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Order operation failed",
			"method", r.Method, "url", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
