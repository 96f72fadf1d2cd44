package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/lib/pq"

	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
)

const leadColumns = `
	lead_id, company_name, office_size, ac_units, current_ac_type,
	monthly_bill, operating_hours, current_usage, projected_usage,
	savings_monthly, savings_yearly, savings_five_year, savings_percentage, co2_reduction,
	contact_email, contact_phone, lead_score, priority, source, status,
	email_sent, notes, created_at, updated_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO leads (
			lead_id, company_name, office_size, ac_units, current_ac_type,
			monthly_bill, operating_hours, current_usage, projected_usage,
			savings_monthly, savings_yearly, savings_five_year, savings_percentage, co2_reduction,
			contact_email, contact_phone, lead_score, priority, source, status,
			email_sent, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.LeadID,
		lead.Company.Name,
		lead.Company.OfficeSize,
		lead.Company.ACUnits,
		lead.Company.CurrentACType,
		lead.Consumption.MonthlyBill,
		lead.Consumption.OperatingHours,
		lead.Consumption.CurrentUsage,
		lead.Consumption.ProjectedUsage,
		lead.ProjectedSavings.Monthly,
		lead.ProjectedSavings.Yearly,
		lead.ProjectedSavings.FiveYear,
		lead.ProjectedSavings.SavingsPercentage,
		lead.ProjectedSavings.CO2Reduction,
		lead.Contact.Email,
		lead.Contact.Phone,
		lead.LeadScore,
		lead.Priority,
		lead.Source,
		lead.Status,
		lead.EmailSent,
		lead.Notes,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		return mapInsertError(err)
	}

	return nil
}

// mapInsertError turns a unique-key violation into ErrDuplicateLeadID so a
// colliding lead id fails the creation instead of clobbering a stored lead.
func mapInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return entity.ErrDuplicateLeadID
	}
	return fmt.Errorf("insert lead: %w", err)
}

func (r *LeadRepository) FindByLeadID(ctx context.Context, leadID string) (*entity.Lead, error) {
	query := `SELECT` + leadColumns + ` FROM leads WHERE lead_id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, leadID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return lead, nil
}

// List returns one page sorted by creation time, newest first, plus the
// total count matching the filter.
func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]*entity.Lead, int, error) {
	where := ""
	args := []any{}

	if filter.Priority != "" {
		args = append(args, filter.Priority)
		where += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM leads WHERE TRUE` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := `SELECT` + leadColumns + ` FROM leads WHERE TRUE` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", limitPos, offsetPos)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}

	return leads, total, nil
}

// UpdateStatusNotes writes only the fields the staff provided. A nil
// pointer leaves the stored value alone, so a concurrent email_sent
// reconciliation never collides with this path.
func (r *LeadRepository) UpdateStatusNotes(ctx context.Context, leadID string, status, notes *string) (*entity.Lead, error) {
	if status != nil && !entity.IsValidStatus(*status) {
		return nil, fmt.Errorf("invalid status %q", *status)
	}

	query := `
		UPDATE leads SET
			status = COALESCE($2, status),
			notes = COALESCE($3, notes),
			updated_at = NOW()
		WHERE lead_id = $1
		RETURNING` + leadColumns

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, leadID, status, notes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return lead, nil
}

func (r *LeadRepository) UpdateEmailSent(ctx context.Context, leadID string, sent bool) error {
	query := `UPDATE leads SET email_sent = $2, updated_at = NOW() WHERE lead_id = $1`

	res, err := r.DB.ExecContext(ctx, query, leadID, sent)
	if err != nil {
		return fmt.Errorf("update email_sent: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, leadID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE lead_id = $1`, leadID)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Stats(ctx context.Context) (*entity.LeadStats, error) {
	stats := &entity.LeadStats{
		StatusBreakdown: map[string]int{},
	}

	var avg float64
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE priority = 'HIGH'),
			COUNT(*) FILTER (WHERE priority = 'MEDIUM'),
			COUNT(*) FILTER (WHERE priority = 'LOW'),
			COALESCE(AVG(lead_score), 0)
		FROM leads
	`
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.TotalLeads,
		&stats.PriorityBreakdown.High,
		&stats.PriorityBreakdown.Medium,
		&stats.PriorityBreakdown.Low,
		&avg,
	)
	if err != nil {
		return nil, fmt.Errorf("lead stats: %w", err)
	}
	stats.AverageLeadScore = math.Round(avg*100) / 100

	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status breakdown: %w", err)
		}
		stats.StatusBreakdown[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	err := row.Scan(
		&lead.LeadID,
		&lead.Company.Name,
		&lead.Company.OfficeSize,
		&lead.Company.ACUnits,
		&lead.Company.CurrentACType,
		&lead.Consumption.MonthlyBill,
		&lead.Consumption.OperatingHours,
		&lead.Consumption.CurrentUsage,
		&lead.Consumption.ProjectedUsage,
		&lead.ProjectedSavings.Monthly,
		&lead.ProjectedSavings.Yearly,
		&lead.ProjectedSavings.FiveYear,
		&lead.ProjectedSavings.SavingsPercentage,
		&lead.ProjectedSavings.CO2Reduction,
		&lead.Contact.Email,
		&lead.Contact.Phone,
		&lead.LeadScore,
		&lead.Priority,
		&lead.Source,
		&lead.Status,
		&lead.EmailSent,
		&lead.Notes,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
