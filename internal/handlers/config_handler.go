package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financas/internal/errors"
	"financas/internal/services"
)

// ConfigHandler handles income-estimation config requests.
type ConfigHandler struct {
	configService services.ConfigServicer
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(configService services.ConfigServicer) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// UpdateConfigRequest represents the request payload for updating the config.
// All four fields are overwritten in one update.
type UpdateConfigRequest struct {
	DailyRate      int64 `json:"daily_rate" binding:"gte=0"`
	DaysPerWeek    int   `json:"days_per_week" binding:"required,min=1,max=7"`
	ManualOverride bool  `json:"manual_override"`
	ManualAmount   int64 `json:"manual_amount" binding:"gte=0"`
}

// ConfigResponse represents the config and its derived income estimate
type ConfigResponse struct {
	DailyRate              int64 `json:"daily_rate"`
	DaysPerWeek            int   `json:"days_per_week"`
	ManualOverride         bool  `json:"manual_override"`
	ManualAmount           int64 `json:"manual_amount"`
	EstimatedMonthlyIncome int64 `json:"estimated_monthly_income"`
}

// Get handles reading the singleton config
// @Summary     Get config
// @Description Get the income-estimation parameters and the derived monthly estimate
// @Tags        config
// @Produce     json
// @Success     200 {object} ConfigResponse "Config"
// @Router      /config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	cfg, err := h.configService.Get()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"config":                   cfg,
		"estimated_monthly_income": h.configService.EstimateMonthlyIncome(cfg),
	})
}

// Update handles overwriting the singleton config
// @Summary     Update config
// @Description Overwrite all income-estimation parameters in one update
// @Tags        config
// @Accept      json
// @Produce     json
// @Param       request body UpdateConfigRequest true "Config values"
// @Success     200 {object} ConfigResponse "Updated config"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Config row missing"
// @Router      /config [put]
func (h *ConfigHandler) Update(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cfg, err := h.configService.Update(req.DailyRate, req.DaysPerWeek, req.ManualOverride, req.ManualAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"config":                   cfg,
		"estimated_monthly_income": h.configService.EstimateMonthlyIncome(cfg),
	})
}
