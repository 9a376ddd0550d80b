package handlers

import (
	"net/http"

	merchantRepo "onboardify/database/repository/merchant"
	"onboardify/models"
	"onboardify/services/crm"
	"onboardify/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MerchantHandler exposes merchant onboarding records and the CRM-backed
// progress view.
type MerchantHandler struct {
	Repo   merchantRepo.MerchantRepository
	CRM    crm.Client
	Logger *zap.Logger
}

func NewMerchantHandler(repo merchantRepo.MerchantRepository, crmClient crm.Client, logger *zap.Logger) *MerchantHandler {
	return &MerchantHandler{Repo: repo, CRM: crmClient, Logger: logger}
}

// CreateMerchant answers POST /api/merchants.
func (h *MerchantHandler) CreateMerchant(c *gin.Context) {
	var merchant models.Merchant
	if err := c.ShouldBindJSON(&merchant); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid merchant payload", err.Error())
		return
	}
	if merchant.ID == "" {
		merchant.ID = uuid.New().String()
	}
	if merchant.Stage == "" {
		merchant.Stage = models.StageSignedUp
	}

	if err := h.Repo.Create(&merchant); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create merchant", err.Error())
		return
	}
	c.JSON(http.StatusCreated, merchant)
}

// GetMerchant answers GET /api/merchants/:id.
func (h *MerchantHandler) GetMerchant(c *gin.Context) {
	merchant, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "merchant not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, merchant)
}

// UpdateMerchant answers PATCH /api/merchants/:id.
func (h *MerchantHandler) UpdateMerchant(c *gin.Context) {
	merchant, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "merchant not found", err.Error())
		return
	}

	if err := c.ShouldBindJSON(merchant); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid merchant payload", err.Error())
		return
	}
	merchant.ID = c.Param("id")

	if err := h.Repo.Update(merchant); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update merchant", err.Error())
		return
	}
	c.JSON(http.StatusOK, merchant)
}

// GetProgress answers GET /api/merchants/:id/progress, combining the portal
// stage with the appointment dates held by the CRM. A CRM outage degrades to
// the local view instead of failing the page.
func (h *MerchantHandler) GetProgress(c *gin.Context) {
	merchant, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "merchant not found", err.Error())
		return
	}

	response := gin.H{
		"merchantId": merchant.ID,
		"stage":      merchant.Stage,
	}

	record, err := h.CRM.GetRecord(c.Request.Context(), merchant.CRMRecordID)
	if err != nil {
		h.Logger.Warn("CRM record fetch failed for progress view",
			zap.String("merchantId", merchant.ID), zap.Error(err))
		response["crmAvailable"] = false
	} else {
		response["crmAvailable"] = true
		response["record"] = record
	}

	c.JSON(http.StatusOK, response)
}
