package database

import (
	"context"
	"database/sql"
)

// Indexes mirror the query paths: staff filters on priority/status, the
// list sorts on created_at, and stats scan lead_score.
const leadsSchema = `
CREATE TABLE IF NOT EXISTS leads (
	lead_id            TEXT PRIMARY KEY,
	company_name       TEXT NOT NULL,
	office_size        DOUBLE PRECISION NOT NULL,
	ac_units           INTEGER NOT NULL,
	current_ac_type    TEXT NOT NULL,
	monthly_bill       DOUBLE PRECISION NOT NULL,
	operating_hours    DOUBLE PRECISION NOT NULL,
	current_usage      DOUBLE PRECISION NOT NULL,
	projected_usage    DOUBLE PRECISION NOT NULL,
	savings_monthly    DOUBLE PRECISION NOT NULL,
	savings_yearly     DOUBLE PRECISION NOT NULL,
	savings_five_year  DOUBLE PRECISION NOT NULL,
	savings_percentage DOUBLE PRECISION NOT NULL,
	co2_reduction      DOUBLE PRECISION NOT NULL,
	contact_email      TEXT NOT NULL,
	contact_phone      TEXT NOT NULL,
	lead_score         INTEGER NOT NULL CHECK (lead_score BETWEEN 0 AND 100),
	priority           TEXT NOT NULL CHECK (priority IN ('HIGH', 'MEDIUM', 'LOW')),
	source             TEXT NOT NULL DEFAULT 'Energy_Savings_Calculator',
	status             TEXT NOT NULL DEFAULT 'new'
		CHECK (status IN ('new', 'contacted', 'qualified', 'converted', 'lost')),
	email_sent         BOOLEAN NOT NULL DEFAULT FALSE,
	notes              TEXT NOT NULL DEFAULT '',
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_leads_contact_email ON leads (contact_email);
CREATE INDEX IF NOT EXISTS idx_leads_lead_score ON leads (lead_score DESC);
CREATE INDEX IF NOT EXISTS idx_leads_priority ON leads (priority);
CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads (created_at DESC);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, leadsSchema)
	return err
}
