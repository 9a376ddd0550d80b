package handlers

import (
	"net/http"
	"time"

	trainerRepo "onboardify/database/repository/trainer"
	"onboardify/models"
	"onboardify/services/calendar"
	"onboardify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TrainerHandler exposes the trainer roster, per-trainer availability, and
// the calendar grant flow.
type TrainerHandler struct {
	Repo         trainerRepo.TrainerRepository
	Availability *calendar.AvailabilityProvider
	Google       *calendar.GoogleClient
	Logger       *zap.Logger
}

func NewTrainerHandler(repo trainerRepo.TrainerRepository, availability *calendar.AvailabilityProvider, google *calendar.GoogleClient, logger *zap.Logger) *TrainerHandler {
	return &TrainerHandler{Repo: repo, Availability: availability, Google: google, Logger: logger}
}

// ListTrainers answers GET /api/trainers.
func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list trainers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainers": trainers})
}

// GetTrainerAvailability answers GET /api/trainers/:id/availability over the
// booking horizon.
func (h *TrainerHandler) GetTrainerAvailability(c *gin.Context) {
	trainer, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "trainer not found", err.Error())
		return
	}

	from := time.Now()
	to := from.AddDate(0, 0, calendar.HorizonDays)
	days := h.Availability.RangeAvailability(c.Request.Context(), *trainer, from, to)
	c.JSON(http.StatusOK, gin.H{
		"trainerId": trainer.ID,
		"days":      days,
	})
}

// ConnectCalendar answers GET /api/trainers/:id/calendar/connect by
// redirecting to the Google consent screen. The trainer ID rides in the
// OAuth state parameter and is verified on callback.
func (h *TrainerHandler) ConnectCalendar(c *gin.Context) {
	trainer, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "trainer not found", err.Error())
		return
	}
	c.Redirect(http.StatusFound, h.Google.AuthCodeURL(trainer.ID))
}

// CalendarCallback answers the OAuth redirect and stores the grant.
func (h *TrainerHandler) CalendarCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid OAuth callback", "state and code are required")
		return
	}

	trainer, err := h.Repo.GetByID(state)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "trainer not found", err.Error())
		return
	}

	token, err := h.Google.Exchange(c.Request.Context(), code)
	if err != nil {
		h.Logger.Error("calendar grant exchange failed", zap.String("trainerId", trainer.ID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to complete calendar authorization", err.Error())
		return
	}
	if token.RefreshToken == "" {
		utils.JSONError(c, http.StatusBadGateway, "failed to complete calendar authorization", "no refresh token returned; revoke prior grants and retry")
		return
	}

	grant := models.CalendarGrant{
		Authorized:   true,
		RefreshToken: token.RefreshToken,
		GrantedAt:    time.Now(),
	}
	if err := h.Repo.SetCalendarGrant(trainer.ID, grant); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store calendar grant", err.Error())
		return
	}

	h.Logger.Info("trainer calendar authorized", zap.String("trainerId", trainer.ID))
	c.JSON(http.StatusOK, gin.H{"trainerId": trainer.ID, "authorized": true})
}

// RevokeCalendar answers DELETE /api/trainers/:id/calendar.
func (h *TrainerHandler) RevokeCalendar(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.SetCalendarGrant(id, models.CalendarGrant{Authorized: false}); err != nil {
		utils.JSONError(c, http.StatusNotFound, "trainer not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainerId": id, "authorized": false})
}
