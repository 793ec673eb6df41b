package db

import (
	"fmt"
	"strconv"

	"wealth-projector/internal/config"
)

// LoadConfig reads plan settings from SQLite. If empty, returns defaults.
func (d *DB) LoadConfig() *config.Config {
	cfg := config.Default()

	rows, err := d.sql.Query("SELECT key, value FROM config")
	if err != nil {
		return cfg
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var k, v string
		rows.Scan(&k, &v)
		m[k] = v
	}

	if len(m) == 0 {
		return cfg
	}

	if v, ok := m["current_age"]; ok {
		cfg.CurrentAge, _ = strconv.Atoi(v)
	}
	if v, ok := m["horizon_years"]; ok {
		cfg.HorizonYears, _ = strconv.Atoi(v)
	}
	if v, ok := m["annual_investment"]; ok {
		cfg.AnnualInvestment, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["lump_sum_investment"]; ok {
		cfg.LumpSumInvestment, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["expected_return_percent"]; ok {
		cfg.ExpectedReturnPercent, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["volatility_percent"]; ok {
		cfg.VolatilityPercent, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["tail_percentile"]; ok {
		cfg.TailPercentile, _ = strconv.Atoi(v)
	}

	return cfg
}

// SaveConfig writes plan settings to SQLite (upsert all fields).
func (d *DB) SaveConfig(cfg *config.Config) error {
	pairs := map[string]string{
		"current_age":             strconv.Itoa(cfg.CurrentAge),
		"horizon_years":           strconv.Itoa(cfg.HorizonYears),
		"annual_investment":       fmt.Sprintf("%g", cfg.AnnualInvestment),
		"lump_sum_investment":     fmt.Sprintf("%g", cfg.LumpSumInvestment),
		"expected_return_percent": fmt.Sprintf("%g", cfg.ExpectedReturnPercent),
		"volatility_percent":      fmt.Sprintf("%g", cfg.VolatilityPercent),
		"tail_percentile":         strconv.Itoa(cfg.TailPercentile),
	}

	tx, err := d.sql.Begin()
	if err != nil {
		return fmt.Errorf("save config begin tx: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO config (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save config prepare: %w", err)
	}
	defer stmt.Close()

	for k, v := range pairs {
		if _, err := stmt.Exec(k, v); err != nil {
			tx.Rollback()
			return fmt.Errorf("save config %s: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save config commit: %w", err)
	}
	return nil
}
