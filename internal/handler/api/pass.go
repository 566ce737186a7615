package api

import (
	"errors"
	"net/http"

	reqdto "courtpass/internal/handler/dto/request"
	resdto "courtpass/internal/handler/dto/response"
	"courtpass/internal/usecase/commands"
	"courtpass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PassHandler struct {
	passCommands      commands.PassCommands
	credentialQueries queries.CredentialQueries
}

func NewPassHandler(passCommands commands.PassCommands, credentialQueries queries.CredentialQueries) *PassHandler {
	return &PassHandler{
		passCommands:      passCommands,
		credentialQueries: credentialQueries,
	}
}

// @Summary Issue pass
// @Description Issue the admission credential for a confirmed reservation
// @Tags passes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssuePassRequest true "Pass issuance request"
// @Success 201 {object} resdto.CredentialResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /passes [post]
func (h *PassHandler) IssuePass(c *gin.Context) {
	var req reqdto.IssuePassRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.passCommands.IssuePass(c.Request.Context(), req.ReservationID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrReservationNotConfirmed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is not confirmed",
			})
		case errors.Is(err, commands.ErrReservationCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is cancelled",
			})
		case errors.Is(err, commands.ErrInvalidPartySize):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Reservation party size must be at least 1",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCredentialView(view))
}

// @Summary Get credential
// @Description Get the credential issued for a reservation
// @Tags passes
// @Produce json
// @Security BearerAuth
// @Param reservationId path string true "Reservation ID"
// @Success 200 {object} resdto.CredentialResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /passes/{reservationId} [get]
func (h *PassHandler) GetCredential(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.credentialQueries.GetByReservation(c.Request.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCredentialNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Credential not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCredentialView(view))
}

// @Summary Cancel credentials
// @Description Cancel every non-terminal credential of a reservation
// @Tags passes
// @Security BearerAuth
// @Param reservationId path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /passes/{reservationId} [delete]
func (h *PassHandler) CancelCredentials(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.passCommands.CancelCredentials(c.Request.Context(), reservationID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
