package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope returned by every failing endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SendError writes the standard {success:false, error:...} payload.
func SendError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Success: false, Error: message})
}

// SendOK writes a success payload. Endpoint-specific top-level fields are
// supplied by the caller; "success":true is added here so handlers cannot
// forget it.
func SendOK(c *gin.Context, code int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(code, payload)
}
