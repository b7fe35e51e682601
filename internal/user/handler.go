package user

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

// Fallback payloads returned when a wrapped operation fails. These arrive as
// 200 responses; callers must compare the status text, not the HTTP code.
const (
	registerFallback    = "User ID already exists. OR One or more required fields are null."
	updateFallback      = "User with ID does not exist. OR One or more required fields are null."
	accountEditFallback = "User with ID does not exist."
)

// Handler exposes the user service over HTTP. Every operation is wrapped:
// any failure, including plain validation errors, surfaces as the
// operation's fallback payload.
type Handler struct {
	svc *Service

	register      *breaker.Operation[string]
	update        *breaker.Operation[string]
	accountsList  *breaker.Operation[[]int64]
	addAccount    *breaker.Operation[string]
	removeAccount *breaker.Operation[string]
}

func NewHandler(svc *Service, timeout time.Duration) *Handler {
	errStr := func(msg string) func() string {
		return func() string { return msg }
	}
	return &Handler{
		svc:           svc,
		register:      breaker.New("registerNewCustomer", timeout, errStr(registerFallback)),
		update:        breaker.New("updateCustomerInfo", timeout, errStr(updateFallback)),
		accountsList:  breaker.New("getAccountsList", timeout, func() []int64 { return []int64{} }),
		addAccount:    breaker.New("addAccount", timeout, errStr(accountEditFallback)),
		removeAccount: breaker.New("removeAccount", timeout, errStr(accountEditFallback)),
	}
}

// RegisterRoutes mounts the service's endpoints on the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/registerNewCustomer", h.RegisterNewCustomer)
	r.POST("/updateCustomerInfo", h.UpdateCustomerInfo)
	r.GET("/getAccountsList/:userID", h.GetAccountsList)
	r.POST("/addAccount/:userID/:accountNO", h.AddAccount)
	r.POST("/removeAccount/:userID/:accountNO", h.RemoveAccount)
}

func (h *Handler) RegisterNewCustomer(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		response.WriteError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := h.register.Execute(c.Request.Context(), func(context.Context) (string, error) {
		if err := h.svc.Register(u); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}

func (h *Handler) UpdateCustomerInfo(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		response.WriteError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := h.update.Execute(c.Request.Context(), func(context.Context) (string, error) {
		if err := h.svc.Update(u); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}

func (h *Handler) GetAccountsList(c *gin.Context) {
	userID := c.Param("userID")

	accounts := h.accountsList.Execute(c.Request.Context(), func(context.Context) ([]int64, error) {
		return h.svc.AccountsList(userID)
	})
	c.JSON(http.StatusOK, accounts)
}

func (h *Handler) AddAccount(c *gin.Context) {
	userID := c.Param("userID")
	raw := c.Param("accountNO")

	status := h.addAccount.Execute(c.Request.Context(), func(context.Context) (string, error) {
		accountNO, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", err
		}
		if err := h.svc.AddAccount(userID, accountNO); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}

func (h *Handler) RemoveAccount(c *gin.Context) {
	userID := c.Param("userID")
	raw := c.Param("accountNO")

	status := h.removeAccount.Execute(c.Request.Context(), func(context.Context) (string, error) {
		accountNO, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", err
		}
		if err := h.svc.RemoveAccount(userID, accountNO); err != nil {
			return "", err
		}
		return response.StatusSuccess, nil
	})
	response.WriteStatus(c, status)
}
