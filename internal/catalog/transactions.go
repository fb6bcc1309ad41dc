package catalog

import "time"

// TxType classifies a driver wallet entry
type TxType string

const (
	TxEarning    TxType = "earning"
	TxCommission TxType = "commission"
	TxWithdrawal TxType = "withdrawal"
	TxBonus      TxType = "bonus"
)

// TxStatus applies to withdrawals only
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxApproved  TxStatus = "approved"
	TxCompleted TxStatus = "completed"
)

// Transaction is an entry in the driver's wallet. Debits are negative.
type Transaction struct {
	ID     string    `json:"id"`
	Type   TxType    `json:"type"`
	Title  string    `json:"title"`
	Amount float64   `json:"amount"`
	At     time.Time `json:"at"`
	Status TxStatus  `json:"status,omitempty"`
}

// PlatformTxType classifies platform revenue seen by admins
type PlatformTxType string

const (
	PlatformCommission   PlatformTxType = "commission"
	PlatformBoost        PlatformTxType = "boost"
	PlatformWithdrawal   PlatformTxType = "withdrawal"
	PlatformSubscription PlatformTxType = "subscription"
)

// PlatformTransaction is a movement on the platform account
type PlatformTransaction struct {
	ID     string         `json:"id"`
	Type   PlatformTxType `json:"type"`
	From   string         `json:"from"`
	Amount float64        `json:"amount"`
	At     time.Time      `json:"at"`
	Status TxStatus       `json:"status,omitempty"`
}

// WalletTransactions lists the driver wallet, newest first
func (c *Catalog) WalletTransactions() []Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Transaction, len(c.walletTransactions))
	for i, tx := range c.walletTransactions {
		out[i] = *tx
	}
	return out
}

// RecordTransaction prepends tx to the driver wallet, stamping it with the
// current time when At is zero.
func (c *Catalog) RecordTransaction(tx Transaction) Transaction {
	if tx.At.IsZero() {
		tx.At = c.now()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.walletTransactions = append([]*Transaction{&tx}, c.walletTransactions...)
	return tx
}

// PlatformTransactions lists platform movements, newest first
func (c *Catalog) PlatformTransactions() []PlatformTransaction {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]PlatformTransaction, len(c.platformTransactions))
	for i, tx := range c.platformTransactions {
		out[i] = *tx
	}
	return out
}
