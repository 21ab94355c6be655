package service_test

import (
	"context"
	"testing"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/repository"
	"github.com/arjunshenoy/funnelcast/internal/service"
	"github.com/arjunshenoy/funnelcast/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	projects   service.ProjectService
	plans      service.PlanService
	actuals    service.ActualsService
	mediaPlans service.MediaPlanService
	reports    service.ReportService
	pocs       service.PocService
	repo       repository.ProjectRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	pocRepo := repository.NewSQLitePocRepo(database)
	uow := testutil.NewTestUoW(database)

	return &env{
		projects:   service.NewProjectService(repo, uow),
		plans:      service.NewPlanService(repo, uow),
		actuals:    service.NewActualsService(repo, uow),
		mediaPlans: service.NewMediaPlanService(repo, uow),
		reports:    service.NewReportService(repo),
		pocs:       service.NewPocService(pocRepo),
		repo:       repo,
	}
}

func (e *env) createProject(t *testing.T, name, poc string) *domain.Project {
	t.Helper()
	p, err := e.projects.Create(context.Background(), testutil.GM, name, "Mumbai", poc, testutil.Epoch)
	require.NoError(t, err)
	return p
}

func TestCreateProjectRequiresGM(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.projects.Create(ctx, testutil.SM, "Skyline", "Mumbai", "Amey", testutil.Epoch)
	assert.ErrorIs(t, err, service.ErrNotPermitted)

	_, err = e.projects.Create(ctx, testutil.Manager, "Skyline", "Mumbai", "Amey", testutil.Epoch)
	assert.ErrorIs(t, err, service.ErrNotPermitted)

	p, err := e.projects.Create(ctx, testutil.GM, "Skyline", "Mumbai", "Amey", testutil.Epoch)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.DefaultPlan(), p.Plan)
}

func TestManagerVisibilityIsPocScoped(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	mine := e.createProject(t, "Mine", "Amey")
	other := e.createProject(t, "Other", "Sneha")

	list, err := e.projects.List(ctx, testutil.Manager)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	_, err = e.projects.Get(ctx, testutil.Manager, other.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	list, err = e.projects.List(ctx, testutil.SM)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUnauthorizedMutationIsSilentNoOp(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := e.createProject(t, "Skyline", "Amey")

	// Managers cannot edit the plan: prior state comes back, nothing persists.
	got, err := e.plans.SetPlanField(ctx, testutil.Manager, p.ID, domain.PlanOverallBV, 999)
	require.NoError(t, err)
	assert.Equal(t, 350.0, got.Plan.OverallBV)

	stored, err := e.repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 350.0, stored.Plan.OverallBV)

	// Delete by a non-GM leaves the project in place.
	require.NoError(t, e.projects.Delete(ctx, testutil.SM, p.ID))
	_, err = e.repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
}

func TestLockedProjectRejectsPlanEditsExceptFromGM(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := e.createProject(t, "Skyline", "Amey")
	_, err := e.projects.SetLocked(ctx, testutil.GM, p.ID, true)
	require.NoError(t, err)

	got, err := e.plans.SetPlanField(ctx, testutil.SM, p.ID, domain.PlanCPL, 5200)
	require.NoError(t, err)
	assert.Equal(t, 4819.0, got.Plan.CPL, "SM edit bounces off the lock")

	got, err = e.plans.SetPlanField(ctx, testutil.GM, p.ID, domain.PlanCPL, 5200)
	require.NoError(t, err)
	assert.Equal(t, 5200.0, got.Plan.CPL)

	// Actuals recording stays open under a lock.
	got, err = e.actuals.Record(ctx, testutil.Manager, p.ID, 0, domain.ActualLeads, 40)
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.Actuals[0].Leads)
}

func TestStructuralNoOpDoesNotWrite(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := e.createProject(t, "Skyline", "Amey")

	got, err := e.actuals.Record(ctx, testutil.GM, p.ID, 99, domain.ActualLeads, 5)
	require.NoError(t, err)
	assert.Empty(t, got.Actuals)

	got, err = e.plans.SetWeekSeed(ctx, testutil.GM, p.ID, -1, domain.SeedLeadDistribution, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Weeks[0].LeadDistribution)
}

func TestPlanEditFlowsIntoForecast(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := e.createProject(t, "Skyline", "Amey")

	_, err := e.plans.SetPlanField(ctx, testutil.SM, p.ID, domain.PlanOverallBV, 700)
	require.NoError(t, err)

	calc, m, err := e.reports.Forecast(ctx, testutil.SM, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 87.5, m.DigitalBV, 1e-9)
	assert.InDelta(t, 100, calc.Weeks[len(calc.Weeks)-1].CumulativeLeads/m.TargetLeads*100, 1e-6)
}

func TestReceivedBudgetStoredGross(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := e.createProject(t, "Skyline", "Amey")

	// Net entry is grossed up by the 18% tax divisor before storage.
	got, err := e.plans.SetReceivedBudget(ctx, testutil.SM, p.ID, 1_000_000, domain.ViewNet)
	require.NoError(t, err)
	assert.InDelta(t, 1_180_000, got.Plan.ReceivedBudget, 0.01)

	got, err = e.plans.SetReceivedBudget(ctx, testutil.SM, p.ID, 1_180_000, domain.ViewGross)
	require.NoError(t, err)
	assert.InDelta(t, 1_180_000, got.Plan.ReceivedBudget, 0.01)

	got, err = e.plans.SetOtherSpends(ctx, testutil.SM, p.ID, 500_000, domain.ViewNet)
	require.NoError(t, err)
	assert.InDelta(t, 590_000, got.OtherSpends, 0.01)
}

func TestPeriodReportClampsDatesOutsideCampaign(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := e.createProject(t, "Skyline", "Amey")
	_, err := e.actuals.Record(ctx, testutil.GM, p.ID, 0, domain.ActualLeads, 38)
	require.NoError(t, err)

	report, err := e.reports.Period(ctx, testutil.GM, p.ID,
		testutil.Epoch.AddDate(0, -1, 0), testutil.Epoch.AddDate(1, 0, 0), domain.ViewNet)
	require.NoError(t, err)

	assert.Equal(t, 0, report.StartWeek)
	assert.Equal(t, domain.WeekCount-1, report.EndWeek)
	assert.InDelta(t, 38, report.Funnel[0].Achieved, 1e-9)
}

func TestReviseRevenueEndToEnd(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := e.createProject(t, "Skyline", "Amey")

	got, err := e.actuals.ReviseRevenue(ctx, testutil.Manager, p.ID, domain.VerticalDigital, 35)
	require.NoError(t, err)
	assert.InDelta(t, 5, got.Actuals[0].Bookings, 1e-9) // 35 Cr at 7 Cr ATS
	assert.Equal(t, 10.0, got.Plan.DigitalPercent)

	stored, err := e.repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5, stored.Actuals[0].Bookings, 1e-9)
	assert.Equal(t, 10.0, stored.Plan.DigitalPercent)
}

func TestMediaPlanServiceRoundTrip(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := e.createProject(t, "Skyline", "Amey")

	got, err := e.mediaPlans.AddChannel(ctx, testutil.SM, p.ID, "LinkedIn Ads")
	require.NoError(t, err)
	require.Len(t, got.MediaPlan, 6)
	added := got.MediaPlan[5]
	assert.Equal(t, 5500.0, added.EstimatedCPL)

	got, err = e.mediaPlans.UpdateChannel(ctx, testutil.SM, p.ID, added.ID, "allocation_percent", 10)
	require.NoError(t, err)

	got, err = e.mediaPlans.RemoveChannel(ctx, testutil.SM, p.ID, "display")
	require.NoError(t, err)
	assert.Len(t, got.MediaPlan, 5)

	// Managers cannot touch the media plan.
	got, err = e.mediaPlans.RemoveChannel(ctx, testutil.Manager, p.ID, "fb")
	require.NoError(t, err)
	assert.Len(t, got.MediaPlan, 5)
}

func TestPortfolioRespectsVisibility(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a := e.createProject(t, "Mine", "Amey")
	e.createProject(t, "Other", "Sneha")

	_, err := e.actuals.Record(ctx, testutil.GM, a.ID, 0, domain.ActualBookings, 2)
	require.NoError(t, err)

	all, err := e.reports.Portfolio(ctx, testutil.GM, domain.ViewNet)
	require.NoError(t, err)
	assert.Equal(t, 2, all.ProjectCount)
	assert.InDelta(t, 700, all.TotalPlanBV, 1e-9)

	scoped, err := e.reports.Portfolio(ctx, testutil.Manager, domain.ViewNet)
	require.NoError(t, err)
	assert.Equal(t, 1, scoped.ProjectCount)
	assert.InDelta(t, 350, scoped.TotalPlanBV, 1e-9)
	assert.InDelta(t, 14, scoped.TotalAchievedBV, 1e-9)
}

func TestPocServicePermissions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.pocs.Add(ctx, testutil.Manager, "Amey")
	assert.ErrorIs(t, err, service.ErrNotPermitted)

	added, err := e.pocs.Add(ctx, testutil.SM, "Amey")
	require.NoError(t, err)

	// Removal by an unauthorized role is a silent no-op.
	require.NoError(t, e.pocs.Remove(ctx, testutil.Manager, added.ID))
	pocs, err := e.pocs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, pocs, 1)

	require.NoError(t, e.pocs.Remove(ctx, testutil.GM, added.ID))
	pocs, err = e.pocs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pocs)
}
