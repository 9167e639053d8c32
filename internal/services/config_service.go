package services

import (
	"math"

	"gorm.io/gorm"

	apperrors "financas/internal/errors"
	"financas/internal/logger"
	"financas/internal/models"
)

// weeksPerMonth is the average number of weeks in a calendar month, used
// to project the daily-rate estimate.
const weeksPerMonth = 4.33

// configService manages the singleton income-estimation record.
type configService struct {
	db *gorm.DB
}

// NewConfigService creates a new ConfigServicer.
func NewConfigService(db *gorm.DB) ConfigServicer {
	return &configService{db: db}
}

// Get returns the singleton config row. If it cannot be read the hardcoded
// defaults are returned instead, so callers always receive usable
// parameters; the failure is logged, not propagated.
func (s *configService) Get() (*models.Config, error) {
	var cfg models.Config
	if err := s.db.First(&cfg, "id = ?", models.ConfigID).Error; err != nil {
		logger.Get().Warnw("config read failed, falling back to defaults", "error", err)
		defaults := models.DefaultConfig()
		return &defaults, nil
	}
	return &cfg, nil
}

// Update overwrites all four fields of the singleton row in one write.
func (s *configService) Update(dailyRate int64, daysPerWeek int, manualOverride bool, manualAmount int64) (*models.Config, error) {
	result := s.db.Model(&models.Config{}).
		Where("id = ?", models.ConfigID).
		Updates(map[string]interface{}{
			"daily_rate":      dailyRate,
			"days_per_week":   daysPerWeek,
			"manual_override": manualOverride,
			"manual_amount":   manualAmount,
		})
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrConfigNotFound
	}

	return &models.Config{
		ID:             models.ConfigID,
		DailyRate:      dailyRate,
		DaysPerWeek:    daysPerWeek,
		ManualOverride: manualOverride,
		ManualAmount:   manualAmount,
	}, nil
}

// EstimateMonthlyIncome projects the month's income from the config: the
// manual amount when the override is set, otherwise
// daily rate x days per week x average weeks per month, rounded to cents.
func (s *configService) EstimateMonthlyIncome(cfg *models.Config) int64 {
	if cfg.ManualOverride {
		return cfg.ManualAmount
	}
	return int64(math.Round(float64(cfg.DailyRate) * float64(cfg.DaysPerWeek) * weeksPerMonth))
}
