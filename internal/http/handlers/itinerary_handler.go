// README: Itinerary handler (one generation per submission).
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/modules/itinerary"
)

// ItineraryGenerator is the orchestrator the handler delegates to.
type ItineraryGenerator interface {
	Generate(ctx context.Context, prefs itinerary.Preferences) itinerary.Result
}

type ItineraryHandler struct {
	planner ItineraryGenerator
}

func NewItineraryHandler(planner ItineraryGenerator) *ItineraryHandler {
	return &ItineraryHandler{planner: planner}
}

type itineraryResp struct {
	Status      string                `json:"status"`
	Recognition itinerary.Recognition `json:"recognition,omitempty"`
	Itinerary   *itinerary.Document   `json:"itinerary"`
}

// Create handles POST /api/itineraries.
// Fields are passed through as typed; empty strings are accepted.
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req itinerary.Preferences
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	res := h.planner.Generate(c.Request.Context(), req)
	if res.Failure != nil {
		writeFailure(c, res.Failure)
		return
	}
	if res.Document == nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, itineraryResp{
		Status:      "success",
		Recognition: res.Recognition,
		Itinerary:   res.Document,
	})
}
