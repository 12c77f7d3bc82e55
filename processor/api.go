package processor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alovak/paysim-playground/internal/loyalty"
	"github.com/alovak/paysim-playground/processor/models"
	"github.com/go-chi/chi/v5"
)

// API is a HTTP API for the payment simulator service
type API struct {
	processor *Service
}

func NewAPI(processor *Service) *API {
	return &API{
		processor: processor,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/", a.processPayment)
		r.Post("/bulk", a.bulkProcess)
	})
	r.Get("/customers/{customerID}/payments", a.listPayments)
	r.Post("/loyalty/discount", a.loyaltyDiscount)
}

func (a *API) processPayment(w http.ResponseWriter, r *http.Request) {
	req := models.PaymentRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.processor.Process(req)
	if err != nil {
		var verr models.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusUnprocessableEntity)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (a *API) bulkProcess(w http.ResponseWriter, r *http.Request) {
	var reqs []models.PaymentRequest
	err := json.NewDecoder(r.Body).Decode(&reqs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// BulkProcess never fails; malformed items come back REJECTED.
	results := a.processor.BulkProcess(reqs)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(results)
}

func (a *API) listPayments(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	payments, err := a.processor.Payments(customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payments)
}

func (a *API) loyaltyDiscount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Points     int64 `json:"points"`
		BaseAmount int64 `json:"base_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	discount, err := a.processor.LoyaltyDiscount(body.Points, body.BaseAmount)
	if err != nil {
		if errors.Is(err, loyalty.ErrBaseAmount) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(struct {
		Discount int64 `json:"discount"`
	}{discount})
}
