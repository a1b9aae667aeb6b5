// README: Base handler utilities (JSON helpers, failure mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/modules/itinerary"
)

type errorResponse struct {
	Status string `json:"status"`
	Kind   string `json:"kind,omitempty"`
	Error  string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Status: "failure", Error: msg})
}

// writeFailure renders a failed generation. Both kinds are upstream problems, hence 502;
// the message is shown to the user in place of any itinerary content.
func writeFailure(c *gin.Context, f *itinerary.ErrorInfo) {
	writeJSON(c, http.StatusBadGateway, errorResponse{
		Status: "failure",
		Kind:   string(f.Kind),
		Error:  f.Message,
	})
}
