package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Derived week fields (leads, cumulative sums, spends) are never persisted;
// only the editable distribution seeds are stored and the engine recomputes
// the rest on every read.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		location     TEXT NOT NULL DEFAULT '',
		poc          TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'planning'
		             CHECK(status IN ('planning','active','closed')),
		start_date   TEXT NOT NULL,
		other_spends REAL NOT NULL DEFAULT 0,
		is_locked    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		project_id       TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		overall_bv       REAL NOT NULL,
		ats              REAL NOT NULL,
		cpl              REAL NOT NULL,
		tax_percent      REAL NOT NULL,
		ltw_percent      REAL NOT NULL,
		wtb_percent      REAL NOT NULL,
		digital_percent  REAL NOT NULL,
		presales_percent REAL NOT NULL,
		brand_percent    REAL NOT NULL,
		referral_percent REAL NOT NULL,
		cp_percent       REAL NOT NULL,
		received_budget  REAL NOT NULL DEFAULT 0,
		calculation_mode TEXT NOT NULL DEFAULT 'revenue'
		                 CHECK(calculation_mode IN ('revenue','budget')),
		budget_input     REAL NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS week_seeds (
		project_id         TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		week_id            INTEGER NOT NULL CHECK(week_id >= 0),
		spend_distribution REAL NOT NULL DEFAULT 0,
		lead_distribution  REAL NOT NULL DEFAULT 0,
		ad_conversion      REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, week_id)
	)`,

	`CREATE TABLE IF NOT EXISTS weekly_actuals (
		project_id        TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		week_id           INTEGER NOT NULL CHECK(week_id >= 0),
		leads             REAL NOT NULL DEFAULT 0,
		ap                REAL NOT NULL DEFAULT 0,
		ad                REAL NOT NULL DEFAULT 0,
		spends            REAL NOT NULL DEFAULT 0,
		bookings          REAL NOT NULL DEFAULT 0,
		presales_bookings REAL NOT NULL DEFAULT 0,
		brand_bookings    REAL NOT NULL DEFAULT 0,
		referral_bookings REAL NOT NULL DEFAULT 0,
		cp_bookings       REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, week_id)
	)`,

	`CREATE TABLE IF NOT EXISTS media_channels (
		project_id         TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		channel_id         TEXT NOT NULL,
		name               TEXT NOT NULL,
		allocation_percent REAL NOT NULL DEFAULT 0,
		estimated_cpl      REAL NOT NULL DEFAULT 0,
		capi_percent       REAL NOT NULL DEFAULT 0,
		capi_to_ap_percent REAL NOT NULL DEFAULT 0,
		ap_to_ad_percent   REAL NOT NULL DEFAULT 0,
		is_custom          INTEGER NOT NULL DEFAULT 0,
		order_index        INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, channel_id)
	)`,

	`CREATE TABLE IF NOT EXISTS channel_performance (
		project_id        TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		channel_id        TEXT NOT NULL,
		spends            REAL NOT NULL DEFAULT 0,
		leads             REAL NOT NULL DEFAULT 0,
		open_attempted    REAL NOT NULL DEFAULT 0,
		contacted         REAL NOT NULL DEFAULT 0,
		assigned_to_sales REAL NOT NULL DEFAULT 0,
		ap                REAL NOT NULL DEFAULT 0,
		ad                REAL NOT NULL DEFAULT 0,
		bookings          REAL NOT NULL DEFAULT 0,
		lost              REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, channel_id)
	)`,

	`CREATE TABLE IF NOT EXISTS pocs (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_poc ON projects(poc)`,
	`CREATE INDEX IF NOT EXISTS idx_week_seeds_project ON week_seeds(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_weekly_actuals_project ON weekly_actuals(project_id)`,
}
