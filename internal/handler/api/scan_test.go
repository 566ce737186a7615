//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"courtpass/internal/domain/adjudication"
	"courtpass/internal/handler/api"
	resdto "courtpass/internal/handler/dto/response"
	"courtpass/internal/usecase/commands"
	"courtpass/tests/common/httptest"
	commandsmock "courtpass/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScanHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockScan *commandsmock.MockScanCommands
	handler  *api.ScanHandler
	staffID  uuid.UUID
}

func (s *ScanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockScan = commandsmock.NewMockScanCommands(s.mockCtrl)
	s.handler = api.NewScanHandler(s.mockScan)
	s.staffID = uuid.New()

	s.router.POST("/scans", func(c *gin.Context) {
		// Mock middleware behavior: an authenticated staff member
		c.Set("staff_id", s.staffID)
		s.handler.Adjudicate(c)
	})
	s.router.POST("/scans-unauthenticated", s.handler.Adjudicate)
}

func (s *ScanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScanHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScanHandlerTestSuite))
}

func (s *ScanHandlerTestSuite) TestAdjudicate() {
	body := map[string]any{"code": "SCANCODE", "action": "ENTRY"}

	s.Run("success: a grant comes back as 200 with the remaining budget", func() {
		s.mockScan.EXPECT().Adjudicate(gomock.Any(), "SCANCODE", s.staffID, adjudication.ActionEntry).
			Return(adjudication.Grant(2), nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/scans", body, "")

		var resp resdto.DecisionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Granted)
		s.Equal("ACCESS_GRANTED", resp.ReasonCode)
		s.Require().NotNil(resp.RemainingAdmissions)
		s.Equal(2, *resp.RemainingAdmissions)
	})

	s.Run("success: a denial is still 200, carrying the reason code", func() {
		s.mockScan.EXPECT().Adjudicate(gomock.Any(), "SCANCODE", s.staffID, adjudication.ActionEntry).
			Return(adjudication.Deny(adjudication.OutcomeBudgetExhausted), nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/scans", body, "")

		var resp resdto.DecisionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.Granted)
		s.Equal("BUDGET_EXHAUSTED", resp.ReasonCode)
		s.Nil(resp.RemainingAdmissions)
	})

	s.Run("success: too-early carries the window opening time", func() {
		validFrom := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
		s.mockScan.EXPECT().Adjudicate(gomock.Any(), "SCANCODE", s.staffID, adjudication.ActionEntry).
			Return(adjudication.DenyTooEarly(validFrom), nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/scans", body, "")

		var resp resdto.DecisionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("TOO_EARLY", resp.ReasonCode)
		s.Require().NotNil(resp.ValidFrom)
		s.True(validFrom.Equal(*resp.ValidFrom))
	})

	s.Run("success: lowercase actions are accepted", func() {
		s.mockScan.EXPECT().Adjudicate(gomock.Any(), "SCANCODE", s.staffID, adjudication.ActionExit).
			Return(adjudication.Grant(1), nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/scans",
			map[string]any{"code": "SCANCODE", "action": "exit"}, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("error: returns 400 for an unknown action", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/scans",
			map[string]any{"code": "SCANCODE", "action": "SIDEWAYS"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: returns 400 for a missing code", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/scans",
			map[string]any{"action": "ENTRY"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: returns 400 when the command rejects the action", func() {
		s.mockScan.EXPECT().Adjudicate(gomock.Any(), "SCANCODE", s.staffID, adjudication.ActionEntry).
			Return(adjudication.Decision{}, commands.ErrInvalidAction).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/scans", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid scan action")
	})

	s.Run("error: returns 500 without an authenticated staff member", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/scans-unauthenticated", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}
