package wallet

import (
	"testing"

	"github.com/driversetu/driver-setu/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSummary_SeededLedger checks the totals against the seeded history
func TestSummary_SeededLedger(t *testing.T) {
	service := NewService(catalog.New(nil), nil, DefaultConfig())

	sum := service.Summary(12500)

	assert.Equal(t, 4500.0, sum.TotalEarnings) // 2500 + 1200 + 800
	assert.Equal(t, 370.0, sum.Commission)     // 250 + 120
	assert.Equal(t, 500.0, sum.Bonuses)
	assert.Equal(t, 5000.0, sum.Withdrawn)
	assert.Equal(t, 3000.0, sum.PendingWithdrawals)
	assert.Equal(t, 9500.0, sum.Available)
	assert.Equal(t, 500.0, sum.MinWithdrawal)
	assert.Len(t, sum.Transactions, 8)
}

func TestSummary_AvailableNeverNegative(t *testing.T) {
	service := NewService(catalog.New(nil), nil, DefaultConfig())
	assert.Equal(t, 0.0, service.Summary(1000).Available)
}

func TestRequestWithdrawal(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		amount  float64
		wantErr error
	}{
		{"below minimum", 12500, 499, ErrBelowMinimum},
		{"exactly minimum", 12500, 500, nil},
		{"up to available", 12500, 9500, nil},
		{"pending withdrawals are held", 12500, 9501, ErrInsufficientFunds},
		{"over balance", 3000, 5000, ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := catalog.New(nil)
			service := NewService(ledger, nil, DefaultConfig())

			tx, err := service.RequestWithdrawal(tt.balance, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, ledger.WalletTransactions(), 8)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, -tt.amount, tx.Amount)
			assert.Equal(t, catalog.TxPending, tx.Status)

			txs := ledger.WalletTransactions()
			require.Len(t, txs, 9)
			assert.Equal(t, tx.ID, txs[0].ID)
		})
	}
}

func TestRequestWithdrawal_ReducesAvailable(t *testing.T) {
	service := NewService(catalog.New(nil), nil, DefaultConfig())

	_, err := service.RequestWithdrawal(12500, 9000)
	require.NoError(t, err)

	sum := service.Summary(12500)
	assert.Equal(t, 12000.0, sum.PendingWithdrawals)
	assert.Equal(t, 500.0, sum.Available)
}
