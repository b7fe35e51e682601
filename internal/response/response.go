// Package response holds the payload shapes shared by every service. The
// status strings double as the success/failure sentinel checked by peer
// services, so their exact values are part of the wire contract.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)

// Status is the body returned by every mutating endpoint. A fallback
// substitution arrives as a 200 with a non-Success status, not as an HTTP
// error, so callers must compare the payload.
type Status struct {
	Status string `json:"status"`
}

// WriteStatus writes a 200 with the given status sentinel.
func WriteStatus(c *gin.Context, status string) {
	c.JSON(http.StatusOK, Status{Status: status})
}

// WriteError writes an error response carrying only a human-readable
// message. Used by the operations wired without a fallback wrapper, where
// failures propagate as raw errors.
func WriteError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
