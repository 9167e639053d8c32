package models

// ConfigID is the fixed primary key of the singleton config row.
const ConfigID uint = 1

// Config is the singleton income-estimation parameter record. Exactly one
// row ever exists (id = 1), created at seed time and updated in place.
// Monetary fields are cents.
type Config struct {
	ID             uint  `gorm:"primaryKey" json:"id"`
	DailyRate      int64 `gorm:"not null;default:10000" json:"daily_rate"`
	DaysPerWeek    int   `gorm:"not null;default:5" json:"days_per_week"`
	ManualOverride bool  `gorm:"not null;default:false" json:"manual_override"`
	ManualAmount   int64 `gorm:"not null;default:300000" json:"manual_amount"`
}

// TableName keeps the singular table name from the original schema.
func (Config) TableName() string { return "config" }

// DefaultConfig returns the hardcoded defaults used both for first-run
// seeding and as the fallback when the config row cannot be read.
func DefaultConfig() Config {
	return Config{
		ID:             ConfigID,
		DailyRate:      10000,  // R$ 100.00 per day
		DaysPerWeek:    5,
		ManualOverride: false,
		ManualAmount:   300000, // R$ 3000.00
	}
}
