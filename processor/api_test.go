package processor_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alovak/paysim-playground/processor"
	"github.com/alovak/paysim-playground/processor/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	api := processor.NewAPI(newTestService())
	api.AppendRoutes(router)
	return router
}

func TestAPI_ProcessPayment(t *testing.T) {
	router := newTestRouter()

	t.Run("success", func(t *testing.T) {
		jsonReq, _ := json.Marshal(validRequest())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(jsonReq))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		result := models.PaymentResult{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Equal(t, models.StatusSuccess, result.Status)
		require.Equal(t, "Payment completed", result.Message)
	})

	t.Run("validation error", func(t *testing.T) {
		bad := validRequest()
		bad.Amount = -100
		jsonReq, _ := json.Marshal(bad)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(jsonReq))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "Amount must be positive", strings.TrimSpace(w.Body.String()))
	})

	t.Run("fraud rejection is not an error", func(t *testing.T) {
		rejected := validRequest()
		rejected.CardNumber = "1111111111111117"
		jsonReq, _ := json.Marshal(rejected)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(jsonReq))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		result := models.PaymentResult{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Equal(t, models.StatusRejected, result.Status)
		require.Contains(t, strings.ToLower(result.Message), "fraud")
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/payments", strings.NewReader("{"))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAPI_BulkProcess(t *testing.T) {
	router := newTestRouter()

	bad := validRequest()
	bad.Amount = -100

	jsonReq, _ := json.Marshal([]models.PaymentRequest{validRequest(), bad, validRequest()})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/payments/bulk", bytes.NewBuffer(jsonReq))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var results []models.PaymentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 3)
	require.Equal(t, models.StatusSuccess, results[0].Status)
	require.Equal(t, models.StatusRejected, results[1].Status)
	require.Equal(t, models.StatusSuccess, results[2].Status)
}

func TestAPI_ListPayments(t *testing.T) {
	router := newTestRouter()

	payment := validRequest()
	payment.CustomerID = "history-customer"
	jsonReq, _ := json.Marshal(payment)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(jsonReq))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, fmt.Sprintf("/customers/%s/payments", payment.CustomerID), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var records []models.PaymentRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	require.Equal(t, "411111******1111", records[0].CardMasked)
	require.Equal(t, models.StatusSuccess, records[0].Status)
}

func TestAPI_LoyaltyDiscount(t *testing.T) {
	router := newTestRouter()

	t.Run("tier with cap", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/loyalty/discount",
			strings.NewReader(`{"points":2000,"base_amount":20000}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Discount int64 `json:"discount"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.EqualValues(t, 1500, resp.Discount)
	})

	t.Run("non-positive base amount", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/loyalty/discount",
			strings.NewReader(`{"points":1000,"base_amount":0}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "Base amount must be positive", strings.TrimSpace(w.Body.String()))
	})
}
