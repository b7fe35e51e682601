package misc

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/breaker"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/response"
)

// Handler exposes the cheque book endpoints. Both are wrapped; failures
// surface as the "Error" status sentinel under a 200.
type Handler struct {
	svc *Service

	order *breaker.Operation[string]
	block *breaker.Operation[string]
}

func NewHandler(svc *Service, timeout time.Duration) *Handler {
	errStatus := func() string { return response.StatusError }
	return &Handler{
		svc:   svc,
		order: breaker.New("orderCheckBook", timeout, errStatus),
		block: breaker.New("blockCheckBook", timeout, errStatus),
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/orderCheckBook/:accountNO", h.OrderCheckBook)
	r.POST("/blockCheckBook/:accountNO", h.BlockCheckBook)
}

func (h *Handler) OrderCheckBook(c *gin.Context) {
	accountNo := c.Param("accountNO")

	status := h.order.Execute(c.Request.Context(), func(context.Context) (string, error) {
		accountNO, err := strconv.ParseInt(accountNo, 10, 64)
		if err != nil {
			return "", err
		}
		if err := h.svc.OrderChequeBook(accountNO); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}

func (h *Handler) BlockCheckBook(c *gin.Context) {
	accountNo := c.Param("accountNO")

	status := h.block.Execute(c.Request.Context(), func(context.Context) (string, error) {
		accountNO, err := strconv.ParseInt(accountNo, 10, 64)
		if err != nil {
			return "", err
		}
		if err := h.svc.BlockChequeBook(accountNO); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}
