package account

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/breaker"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/models"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/response"
)

// Handler exposes the account service over HTTP.
//
// CreateNewAccount is deliberately not wrapped: its failures propagate as
// raw HTTP errors, unlike every other endpoint here, which substitutes a
// fallback payload under a 200. The asymmetry is part of the service's
// observable contract.
type Handler struct {
	svc *Service

	update  *breaker.Operation[string]
	close   *breaker.Operation[string]
	summary *breaker.Operation[[]models.Transaction]
}

func NewHandler(svc *Service, timeout time.Duration) *Handler {
	errStatus := func() string { return response.StatusError }
	return &Handler{
		svc:     svc,
		update:  breaker.New("updateAccountInfo", timeout, errStatus),
		close:   breaker.New("closeAccount", timeout, errStatus),
		summary: breaker.New("getTransactionSummary", timeout, func() []models.Transaction { return nil }),
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/createNewAccount", h.CreateNewAccount)
	r.POST("/updateAccountInfo", h.UpdateAccountInfo)
	r.POST("/closeAccount/:accountNO", h.CloseAccount)
	r.GET("/getTransactionSummary/:accountNO", h.GetTransactionSummary)
}

func (h *Handler) CreateNewAccount(c *gin.Context) {
	var acc models.Account
	if err := c.ShouldBindJSON(&acc); err != nil {
		response.WriteError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.Create(c.Request.Context(), acc); err != nil {
		response.WriteError(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.WriteStatus(c, response.StatusSuccess)
}

func (h *Handler) UpdateAccountInfo(c *gin.Context) {
	var acc models.Account
	if err := c.ShouldBindJSON(&acc); err != nil {
		response.WriteError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := h.update.Execute(c.Request.Context(), func(context.Context) (string, error) {
		if err := h.svc.Update(acc); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}

func (h *Handler) CloseAccount(c *gin.Context) {
	accountNo := c.Param("accountNO")

	status := h.close.Execute(c.Request.Context(), func(ctx context.Context) (string, error) {
		accountNO, err := strconv.ParseInt(accountNo, 10, 64)
		if err != nil {
			return "", err
		}
		if err := h.svc.Close(ctx, accountNO); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}

func (h *Handler) GetTransactionSummary(c *gin.Context) {
	accountNo := c.Param("accountNO")

	transactions := h.summary.Execute(c.Request.Context(), func(context.Context) ([]models.Transaction, error) {
		accountNO, err := strconv.ParseInt(accountNo, 10, 64)
		if err != nil {
			return nil, err
		}
		return h.svc.TransactionSummary(accountNO)
	})
	c.JSON(http.StatusOK, transactions)
}
