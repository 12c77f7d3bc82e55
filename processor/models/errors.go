package models

// ValidationError marks a malformed request. It is raised to the caller of
// Process and is distinct from business declines, which are returned as
// PaymentResult values. Each value is the exact caller-facing message.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrAmountNotPositive = ValidationError("Amount must be positive")
	ErrCardFormat        = ValidationError("Invalid card number format")
	ErrExpiryDate        = ValidationError("Invalid expiry date")
	ErrCurrencyEmpty     = ValidationError("Currency cannot be empty")
	ErrCustomerIDBlank   = ValidationError("Customer ID cannot be blank")
)
