package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arjunshenoy/funnelcast/internal/db"
	"github.com/arjunshenoy/funnelcast/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database. It is
// constructed over a DBTX so services can scope it to a transaction.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, location, poc, status, start_date, other_spends, is_locked, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Location,
		p.Poc,
		string(p.Status),
		p.StartDate.Format(dateLayout),
		p.OtherSpends,
		boolToInt(p.IsLocked),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	if err := r.insertChildren(ctx, p); err != nil {
		return err
	}
	return nil
}

// Replace swaps the stored aggregate for the given state in full. Child rows
// are rewritten wholesale; callers wanting atomicity run this inside a
// UnitOfWork transaction.
func (r *SQLiteProjectRepo) Replace(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, location = ?, poc = ?, status = ?, start_date = ?, other_spends = ?, is_locked = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Location,
		p.Poc,
		string(p.Status),
		p.StartDate.Format(dateLayout),
		p.OtherSpends,
		boolToInt(p.IsLocked),
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project %s: %w", p.ID, ErrNotFound)
	}

	for _, table := range []string{"plans", "week_seeds", "weekly_actuals", "media_channels", "channel_performance"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE project_id = ?", p.ID); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return r.insertChildren(ctx, p)
}

func (r *SQLiteProjectRepo) insertChildren(ctx context.Context, p *domain.Project) error {
	plan := p.Plan
	_, err := r.db.ExecContext(ctx, `INSERT INTO plans (
		project_id, overall_bv, ats, cpl, tax_percent, ltw_percent, wtb_percent,
		digital_percent, presales_percent, brand_percent, referral_percent, cp_percent,
		received_budget, calculation_mode, budget_input
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, plan.OverallBV, plan.ATS, plan.CPL, plan.TaxPercent, plan.LTWPercent, plan.WTBPercent,
		plan.DigitalPercent, plan.PresalesPercent, plan.BrandPercent, plan.ReferralPercent, plan.CPPercent,
		plan.ReceivedBudget, string(planMode(plan)), plan.BudgetInput,
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	for _, w := range p.Weeks {
		_, err := r.db.ExecContext(ctx, `INSERT INTO week_seeds (project_id, week_id, spend_distribution, lead_distribution, ad_conversion)
			VALUES (?, ?, ?, ?, ?)`,
			p.ID, w.ID, w.SpendDistribution, w.LeadDistribution, w.AdConversion)
		if err != nil {
			return fmt.Errorf("inserting week seed %d: %w", w.ID, err)
		}
	}

	for weekID, act := range p.Actuals {
		_, err := r.db.ExecContext(ctx, `INSERT INTO weekly_actuals (
			project_id, week_id, leads, ap, ad, spends,
			bookings, presales_bookings, brand_bookings, referral_bookings, cp_bookings
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, weekID, act.Leads, act.AP, act.AD, act.Spends,
			act.Bookings, act.PresalesBookings, act.BrandBookings, act.ReferralBookings, act.CPBookings)
		if err != nil {
			return fmt.Errorf("inserting actuals for week %d: %w", weekID, err)
		}
	}

	for i, ch := range p.MediaPlan {
		_, err := r.db.ExecContext(ctx, `INSERT INTO media_channels (
			project_id, channel_id, name, allocation_percent, estimated_cpl,
			capi_percent, capi_to_ap_percent, ap_to_ad_percent, is_custom, order_index
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, ch.ID, ch.Name, ch.AllocationPercent, ch.EstimatedCPL,
			ch.CAPIPercent, ch.CAPIToAPPercent, ch.APToADPercent, boolToInt(ch.IsCustom), i)
		if err != nil {
			return fmt.Errorf("inserting media channel %s: %w", ch.ID, err)
		}
	}

	for _, perf := range p.ChannelPerformance {
		_, err := r.db.ExecContext(ctx, `INSERT INTO channel_performance (
			project_id, channel_id, spends, leads, open_attempted, contacted,
			assigned_to_sales, ap, ad, bookings, lost
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, perf.ChannelID, perf.Spends, perf.Leads, perf.OpenAttempted, perf.Contacted,
			perf.AssignedToSales, perf.AP, perf.AD, perf.Bookings, perf.Lost)
		if err != nil {
			return fmt.Errorf("inserting channel performance %s: %w", perf.ChannelID, err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT id, name, location, poc, status, start_date, other_spends, is_locked, created_at, updated_at
		FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanProject(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	return r.list(ctx, `SELECT id, name, location, poc, status, start_date, other_spends, is_locked, created_at, updated_at
		FROM projects ORDER BY created_at`)
}

func (r *SQLiteProjectRepo) ListByPoc(ctx context.Context, poc string) ([]*domain.Project, error) {
	return r.list(ctx, `SELECT id, name, location, poc, status, start_date, other_spends, is_locked, created_at, updated_at
		FROM projects WHERE poc = ? ORDER BY created_at`, poc)
}

func (r *SQLiteProjectRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProjectFromRows(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for _, p := range projects {
		if err := r.loadChildren(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var status, startDate, createdAt, updatedAt string
	var locked int

	err := row.Scan(&p.ID, &p.Name, &p.Location, &p.Poc, &status, &startDate,
		&p.OtherSpends, &locked, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(status)
	p.IsLocked = intToBool(locked)
	if p.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

func scanProjectFromRows(rows *sql.Rows) (*domain.Project, error) {
	return scanProject(rows)
}

func (r *SQLiteProjectRepo) loadChildren(ctx context.Context, p *domain.Project) error {
	if err := r.loadPlan(ctx, p); err != nil {
		return err
	}
	if err := r.loadWeeks(ctx, p); err != nil {
		return err
	}
	if err := r.loadActuals(ctx, p); err != nil {
		return err
	}
	if err := r.loadMediaPlan(ctx, p); err != nil {
		return err
	}
	return r.loadChannelPerformance(ctx, p)
}

func (r *SQLiteProjectRepo) loadPlan(ctx context.Context, p *domain.Project) error {
	var mode string
	row := r.db.QueryRowContext(ctx, `SELECT overall_bv, ats, cpl, tax_percent, ltw_percent, wtb_percent,
		digital_percent, presales_percent, brand_percent, referral_percent, cp_percent,
		received_budget, calculation_mode, budget_input
		FROM plans WHERE project_id = ?`, p.ID)
	err := row.Scan(&p.Plan.OverallBV, &p.Plan.ATS, &p.Plan.CPL, &p.Plan.TaxPercent,
		&p.Plan.LTWPercent, &p.Plan.WTBPercent,
		&p.Plan.DigitalPercent, &p.Plan.PresalesPercent, &p.Plan.BrandPercent,
		&p.Plan.ReferralPercent, &p.Plan.CPPercent,
		&p.Plan.ReceivedBudget, &mode, &p.Plan.BudgetInput)
	if err == sql.ErrNoRows {
		p.Plan = domain.DefaultPlan()
		return nil
	}
	if err != nil {
		return fmt.Errorf("scanning plan: %w", err)
	}
	p.Plan.CalculationMode = domain.CalculationMode(mode)
	return nil
}

// loadWeeks rebuilds the fixed-length series from the project epoch and
// overlays the stored seeds; derived fields stay zero until the engine runs.
func (r *SQLiteProjectRepo) loadWeeks(ctx context.Context, p *domain.Project) error {
	p.Weeks = domain.GenerateWeeks(p.StartDate)

	rows, err := r.db.QueryContext(ctx, `SELECT week_id, spend_distribution, lead_distribution, ad_conversion
		FROM week_seeds WHERE project_id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("listing week seeds: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekID int
		var spend, lead, conv float64
		if err := rows.Scan(&weekID, &spend, &lead, &conv); err != nil {
			return fmt.Errorf("scanning week seed: %w", err)
		}
		if weekID < 0 || weekID >= len(p.Weeks) {
			continue
		}
		p.Weeks[weekID].SpendDistribution = spend
		p.Weeks[weekID].LeadDistribution = lead
		p.Weeks[weekID].AdConversion = conv
	}
	return rows.Err()
}

func (r *SQLiteProjectRepo) loadActuals(ctx context.Context, p *domain.Project) error {
	p.Actuals = map[int]domain.WeeklyActuals{}

	rows, err := r.db.QueryContext(ctx, `SELECT week_id, leads, ap, ad, spends,
		bookings, presales_bookings, brand_bookings, referral_bookings, cp_bookings
		FROM weekly_actuals WHERE project_id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("listing actuals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var act domain.WeeklyActuals
		if err := rows.Scan(&act.WeekID, &act.Leads, &act.AP, &act.AD, &act.Spends,
			&act.Bookings, &act.PresalesBookings, &act.BrandBookings,
			&act.ReferralBookings, &act.CPBookings); err != nil {
			return fmt.Errorf("scanning actuals: %w", err)
		}
		p.Actuals[act.WeekID] = act
	}
	return rows.Err()
}

func (r *SQLiteProjectRepo) loadMediaPlan(ctx context.Context, p *domain.Project) error {
	rows, err := r.db.QueryContext(ctx, `SELECT channel_id, name, allocation_percent, estimated_cpl,
		capi_percent, capi_to_ap_percent, ap_to_ad_percent, is_custom
		FROM media_channels WHERE project_id = ? ORDER BY order_index`, p.ID)
	if err != nil {
		return fmt.Errorf("listing media channels: %w", err)
	}
	defer rows.Close()

	p.MediaPlan = nil
	for rows.Next() {
		var ch domain.MediaChannel
		var custom int
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.AllocationPercent, &ch.EstimatedCPL,
			&ch.CAPIPercent, &ch.CAPIToAPPercent, &ch.APToADPercent, &custom); err != nil {
			return fmt.Errorf("scanning media channel: %w", err)
		}
		ch.IsCustom = intToBool(custom)
		p.MediaPlan = append(p.MediaPlan, ch)
	}
	return rows.Err()
}

func (r *SQLiteProjectRepo) loadChannelPerformance(ctx context.Context, p *domain.Project) error {
	rows, err := r.db.QueryContext(ctx, `SELECT channel_id, spends, leads, open_attempted, contacted,
		assigned_to_sales, ap, ad, bookings, lost
		FROM channel_performance WHERE project_id = ? ORDER BY channel_id`, p.ID)
	if err != nil {
		return fmt.Errorf("listing channel performance: %w", err)
	}
	defer rows.Close()

	p.ChannelPerformance = nil
	for rows.Next() {
		var perf domain.ChannelPerformance
		if err := rows.Scan(&perf.ChannelID, &perf.Spends, &perf.Leads, &perf.OpenAttempted,
			&perf.Contacted, &perf.AssignedToSales, &perf.AP, &perf.AD,
			&perf.Bookings, &perf.Lost); err != nil {
			return fmt.Errorf("scanning channel performance: %w", err)
		}
		p.ChannelPerformance = append(p.ChannelPerformance, perf)
	}
	return rows.Err()
}

func planMode(plan domain.PlanningData) domain.CalculationMode {
	if plan.CalculationMode == "" {
		return domain.ModeRevenue
	}
	return plan.CalculationMode
}
