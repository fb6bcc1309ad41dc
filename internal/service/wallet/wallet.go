package wallet

import (
	"errors"
	"fmt"

	"github.com/driversetu/driver-setu/internal/catalog"
	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/google/uuid"
)

var (
	ErrBelowMinimum      = errors.New("amount is below the minimum withdrawal")
	ErrInsufficientFunds = errors.New("amount exceeds the available balance")
)

// Ledger is the transaction history the wallet reads and appends to
type Ledger interface {
	WalletTransactions() []catalog.Transaction
	RecordTransaction(tx catalog.Transaction) catalog.Transaction
}

// Config holds wallet rules
type Config struct {
	MinWithdrawal float64
}

// DefaultConfig returns the rules shown on the withdraw screen
func DefaultConfig() Config {
	return Config{MinWithdrawal: 500}
}

// Summary is the driver wallet overview
type Summary struct {
	Balance            float64               `json:"balance"`
	Available          float64               `json:"available"`
	TotalEarnings      float64               `json:"total_earnings"`
	Commission         float64               `json:"commission"`
	Bonuses            float64               `json:"bonuses"`
	Withdrawn          float64               `json:"withdrawn"`
	PendingWithdrawals float64               `json:"pending_withdrawals"`
	MinWithdrawal      float64               `json:"min_withdrawal"`
	Transactions       []catalog.Transaction `json:"transactions"`
}

// Service computes wallet figures
type Service struct {
	ledger Ledger
	logger *logger.Logger
	config Config
}

// NewService creates a new wallet service
func NewService(ledger Ledger, log *logger.Logger, config Config) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{ledger: ledger, logger: log.Named("wallet"), config: config}
}

// Summary totals the ledger. Commission and withdrawals are reported as
// positive amounts. Pending withdrawals are held back from Available.
func (s *Service) Summary(balance float64) *Summary {
	txs := s.ledger.WalletTransactions()
	sum := &Summary{
		Balance:       balance,
		MinWithdrawal: s.config.MinWithdrawal,
		Transactions:  txs,
	}

	for _, tx := range txs {
		switch tx.Type {
		case catalog.TxEarning:
			sum.TotalEarnings += tx.Amount
		case catalog.TxCommission:
			sum.Commission += -tx.Amount
		case catalog.TxBonus:
			sum.Bonuses += tx.Amount
		case catalog.TxWithdrawal:
			if tx.Status == catalog.TxPending {
				sum.PendingWithdrawals += -tx.Amount
			} else {
				sum.Withdrawn += -tx.Amount
			}
		}
	}

	sum.Available = balance - sum.PendingWithdrawals
	if sum.Available < 0 {
		sum.Available = 0
	}
	return sum
}

// RequestWithdrawal records a pending bank transfer. Nothing is paid out
// and the balance itself is left alone.
func (s *Service) RequestWithdrawal(balance, amount float64) (*catalog.Transaction, error) {
	if amount < s.config.MinWithdrawal {
		return nil, fmt.Errorf("%w of ₹%.0f", ErrBelowMinimum, s.config.MinWithdrawal)
	}
	if available := s.Summary(balance).Available; amount > available {
		return nil, fmt.Errorf("%w of ₹%.2f", ErrInsufficientFunds, available)
	}

	tx := s.ledger.RecordTransaction(catalog.Transaction{
		ID:     uuid.New().String(),
		Type:   catalog.TxWithdrawal,
		Title:  "Bank Transfer",
		Amount: -amount,
		Status: catalog.TxPending,
	})

	s.logger.Info("Withdrawal requested",
		logger.String("transaction_id", tx.ID),
		logger.Float64("amount", amount),
	)
	return &tx, nil
}
