package api

import (
	"net/http"

	reqdto "courtpass/internal/handler/dto/request"
	resdto "courtpass/internal/handler/dto/response"
	"courtpass/internal/handler/middleware"
	"courtpass/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	scanCommands commands.ScanCommands
}

func NewScanHandler(scanCommands commands.ScanCommands) *ScanHandler {
	return &ScanHandler{scanCommands: scanCommands}
}

// @Summary Adjudicate scan
// @Description Decide one scan attempt for the presented pass code
// @Tags scans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanRequest true "Scan request"
// @Success 200 {object} resdto.DecisionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /scans [post]
func (h *ScanHandler) Adjudicate(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ScanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	// Denials are decisions, not errors; gate hardware switches on the
	// reason code and always gets a 200.
	decision, err := h.scanCommands.Adjudicate(c.Request.Context(), req.Code, staffID, req.ToAction())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid scan action",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDecision(decision))
}
