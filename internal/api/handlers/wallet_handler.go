package handlers

import (
	"net/http"

	"github.com/driversetu/driver-setu/internal/api/dto"
	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/gin-gonic/gin"
)

// GetWallet handles GET /v1/wallet
func (h *Handlers) GetWallet(c *gin.Context) {
	c.JSON(http.StatusOK, h.Wallet.Summary(walletBalance(c)))
}

// Withdraw handles POST /v1/wallet/withdraw
func (h *Handlers) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	tx, err := h.Wallet.RequestWithdrawal(walletBalance(c), req.Amount)
	if err != nil {
		h.Logger.Info("Withdrawal rejected", logger.Float64("amount", req.Amount), logger.Err(err))
		h.respondError(c, err)
		return
	}

	h.Monitor.RecordWithdrawalRequested(req.Amount)
	c.JSON(http.StatusCreated, tx)
}

func walletBalance(c *gin.Context) float64 {
	if p := currentProfile(c); p != nil && p.Driver != nil {
		return p.Driver.WalletBalance
	}
	return 0
}
