package models

import "time"

// Status is the terminal outcome of a payment authorization.
type Status string

const (
	StatusSuccess  Status = "SUCCESS"
	StatusFailed   Status = "FAILED"
	StatusRejected Status = "REJECTED"
)

// MessageCompleted is the fixed message carried by every successful result.
const MessageCompleted = "Payment completed"

// PaymentRequest is a single authorization attempt as submitted by the caller.
// Amount is in minor currency units.
type PaymentRequest struct {
	Amount      int64  `json:"amount"`
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	CustomerID  string `json:"customer_id"`
}

// PaymentResult is the decision for one request. Message explains FAILED and
// REJECTED outcomes and is MessageCompleted for SUCCESS.
type PaymentResult struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// PaymentRecord is the stored trace of a processed payment. The PAN is kept
// masked only.
type PaymentRecord struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	CardMasked string    `json:"card_masked"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	Status     Status    `json:"status"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
