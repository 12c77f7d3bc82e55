package processor

import (
	"strings"

	"github.com/alovak/paysim-playground/internal/card"
	"github.com/alovak/paysim-playground/internal/clock"
	"github.com/alovak/paysim-playground/internal/currency"
	"github.com/alovak/paysim-playground/internal/expiry"
	"github.com/alovak/paysim-playground/internal/fraud"
	"github.com/alovak/paysim-playground/internal/gateway"
	"github.com/alovak/paysim-playground/internal/loyalty"
	"github.com/alovak/paysim-playground/processor/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Service runs the authorization pipeline: request validation, fraud screen,
// currency normalization, simulated gateway. Malformed requests raise a
// models.ValidationError; fraud and gateway declines are ordinary results.
type Service struct {
	logger *slog.Logger
	repo   *Repository
	cfg    *Config
	clock  clock.Clock
}

func NewService(logger *slog.Logger, repo *Repository, cfg *Config, clk clock.Clock) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if clk == nil {
		clk = clock.System{}
	}

	return &Service{
		logger: logger,
		repo:   repo,
		cfg:    cfg,
		clock:  clk,
	}
}

// Process decides a single payment. It returns an error only for malformed
// requests; every well-formed request yields exactly one result.
func (s *Service) Process(req models.PaymentRequest) (models.PaymentResult, error) {
	if err := s.validate(req); err != nil {
		return models.PaymentResult{}, err
	}

	result := s.authorize(req)
	s.store(req, result)

	return result, nil
}

// BulkProcess decides each request in order, converting per-item validation
// errors into REJECTED results so the batch itself never fails. The output
// always has one entry per input, in input order.
func (s *Service) BulkProcess(reqs []models.PaymentRequest) []models.PaymentResult {
	results := make([]models.PaymentResult, len(reqs))

	workers := s.cfg.BulkWorkers
	if workers < 1 {
		workers = 1
	}

	// Items share no state, so they may be decided concurrently as long as
	// each result lands at its own index.
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			result, err := s.Process(req)
			if err != nil {
				result = models.PaymentResult{
					Status:  models.StatusRejected,
					Message: err.Error(),
				}
			}
			results[i] = result
			return nil
		})
	}

	g.Wait()

	return results
}

// LoyaltyDiscount computes the capped discount for a points balance. It is an
// independent entry point and takes no part in authorization.
func (s *Service) LoyaltyDiscount(points, baseAmount int64) (int64, error) {
	return loyalty.Discount(points, baseAmount)
}

// Payments returns the stored history for a customer.
func (s *Service) Payments(customerID string) ([]*models.PaymentRecord, error) {
	return s.repo.ListPayments(customerID)
}

func (s *Service) validate(req models.PaymentRequest) error {
	switch {
	case req.Amount <= 0:
		return models.ErrAmountNotPositive
	case !card.ValidFormat(req.CardNumber):
		return models.ErrCardFormat
	case !expiry.Valid(req.ExpiryMonth, req.ExpiryYear, s.clock.Now()):
		return models.ErrExpiryDate
	case req.Currency == "":
		return models.ErrCurrencyEmpty
	case strings.TrimSpace(req.CustomerID) == "":
		return models.ErrCustomerIDBlank
	default:
		return nil
	}
}

func (s *Service) authorize(req models.PaymentRequest) models.PaymentResult {
	if fraud.Suspicious(req.CardNumber) {
		return models.PaymentResult{
			Status:  models.StatusRejected,
			Message: "Rejected: suspected fraud",
		}
	}

	outcome := gateway.TryCharge(req.CardNumber, req.Amount)
	if !outcome.Approved {
		return models.PaymentResult{
			Status:  models.StatusFailed,
			Message: outcome.Message,
		}
	}

	return models.PaymentResult{
		Status:  models.StatusSuccess,
		Message: models.MessageCompleted,
	}
}

// store records the decision for history lookups, with the currency code
// normalized for bookkeeping. Recording is best effort: the decision stands
// even when the repository write fails.
func (s *Service) store(req models.PaymentRequest, result models.PaymentResult) {
	record := &models.PaymentRecord{
		ID:         uuid.New().String(),
		CustomerID: req.CustomerID,
		CardMasked: card.Mask(req.CardNumber),
		Amount:     req.Amount,
		Currency:   currency.Normalize(req.Currency),
		Status:     result.Status,
		Message:    result.Message,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repo.CreatePayment(record); err != nil {
		s.logger.Error("recording payment", "err", err)
	}
}
