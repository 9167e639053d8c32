package services

import (
	"testing"

	"financas/internal/models"
	"financas/internal/testutil"
)

func TestGetConfig(t *testing.T) {
	t.Run("returns_stored_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.CreateTestConfig(t, db)
		svc := NewConfigService(db)

		cfg, err := svc.Get()
		testutil.AssertNoError(t, err)
		if cfg.ID != models.ConfigID {
			t.Errorf("expected singleton ID %d, got %d", models.ConfigID, cfg.ID)
		}
	})

	t.Run("falls_back_to_defaults_when_missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewConfigService(db)

		cfg, err := svc.Get()
		testutil.AssertNoError(t, err)

		defaults := models.DefaultConfig()
		if *cfg != defaults {
			t.Errorf("expected defaults %+v, got %+v", defaults, *cfg)
		}
	})
}

func TestUpdateConfig(t *testing.T) {
	t.Run("round_trips_exactly", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.CreateTestConfig(t, db)
		svc := NewConfigService(db)

		_, err := svc.Update(12345, 6, true, 420000)
		testutil.AssertNoError(t, err)

		cfg, err := svc.Get()
		testutil.AssertNoError(t, err)
		if cfg.DailyRate != 12345 || cfg.DaysPerWeek != 6 || !cfg.ManualOverride || cfg.ManualAmount != 420000 {
			t.Errorf("round trip mismatch: %+v", *cfg)
		}

		// Clearing the override flag must persist too.
		_, err = svc.Update(12345, 6, false, 420000)
		testutil.AssertNoError(t, err)
		cfg, err = svc.Get()
		testutil.AssertNoError(t, err)
		if cfg.ManualOverride {
			t.Error("expected manual_override to be cleared")
		}
	})

	t.Run("missing_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewConfigService(db)

		_, err := svc.Update(100, 5, false, 3000)
		testutil.AssertAppError(t, err, "CONFIG_NOT_FOUND")
	})
}

func TestEstimateMonthlyIncome(t *testing.T) {
	svc := NewConfigService(nil)

	t.Run("daily_rate_projection", func(t *testing.T) {
		cfg := &models.Config{DailyRate: 10000, DaysPerWeek: 5}
		// 10000 * 5 * 4.33
		if got := svc.EstimateMonthlyIncome(cfg); got != 216500 {
			t.Errorf("expected 216500, got %d", got)
		}
	})

	t.Run("manual_override", func(t *testing.T) {
		cfg := &models.Config{DailyRate: 10000, DaysPerWeek: 5, ManualOverride: true, ManualAmount: 300000}
		if got := svc.EstimateMonthlyIncome(cfg); got != 300000 {
			t.Errorf("expected 300000, got %d", got)
		}
	})

	t.Run("rounds_to_cents", func(t *testing.T) {
		cfg := &models.Config{DailyRate: 3333, DaysPerWeek: 3}
		// 3333 * 3 * 4.33 = 43295.67, rounds to 43296
		if got := svc.EstimateMonthlyIncome(cfg); got != 43296 {
			t.Errorf("expected 43296, got %d", got)
		}
	})
}
