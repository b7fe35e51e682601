package operation

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/breaker"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/response"
)

// Handler exposes the ledger operations over HTTP. All three are wrapped:
// every failure, from an unparseable amount to an insufficient balance,
// comes back as a 200 carrying the "Error" status sentinel.
type Handler struct {
	svc *Service

	deposit  *breaker.Operation[string]
	withdraw *breaker.Operation[string]
	transfer *breaker.Operation[string]
}

func NewHandler(svc *Service, timeout time.Duration) *Handler {
	errStatus := func() string { return response.StatusError }
	return &Handler{
		svc:      svc,
		deposit:  breaker.New("depositMoney", timeout, errStatus),
		withdraw: breaker.New("withdrawMoney", timeout, errStatus),
		transfer: breaker.New("transferMoney", timeout, errStatus),
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/depositMoney/:accountNO/:amount", h.DepositMoney)
	r.POST("/withdrawMoney/:accountNO/:amount", h.WithdrawMoney)
	r.POST("/transferMoney/:accountNoFrom/:accountNoTo/:amount", h.TransferMoney)
}

func (h *Handler) DepositMoney(c *gin.Context) {
	accountNo := c.Param("accountNO")
	amount := c.Param("amount")

	status := h.deposit.Execute(c.Request.Context(), func(context.Context) (string, error) {
		accountNO, amountN, err := parsePair(accountNo, amount)
		if err != nil {
			return "", err
		}
		if err := h.svc.Deposit(accountNO, amountN); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}

func (h *Handler) WithdrawMoney(c *gin.Context) {
	accountNo := c.Param("accountNO")
	amount := c.Param("amount")

	status := h.withdraw.Execute(c.Request.Context(), func(context.Context) (string, error) {
		accountNO, amountN, err := parsePair(accountNo, amount)
		if err != nil {
			return "", err
		}
		if err := h.svc.Withdraw(accountNO, amountN); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}

func (h *Handler) TransferMoney(c *gin.Context) {
	fromNo := c.Param("accountNoFrom")
	toNo := c.Param("accountNoTo")
	amount := c.Param("amount")

	status := h.transfer.Execute(c.Request.Context(), func(context.Context) (string, error) {
		fromNO, err := strconv.ParseInt(fromNo, 10, 64)
		if err != nil {
			return "", err
		}
		toNO, err := strconv.ParseInt(toNo, 10, 64)
		if err != nil {
			return "", err
		}
		amountN, err := strconv.ParseInt(amount, 10, 64)
		if err != nil {
			return "", err
		}
		if err := h.svc.Transfer(fromNO, toNO, amountN); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}

func parsePair(accountNo, amount string) (int64, int64, error) {
	accountNO, err := strconv.ParseInt(accountNo, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	amountN, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return accountNO, amountN, nil
}
