package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	errorvalues "github.com/limbo/fitdash/internal/error_values"
	"github.com/limbo/fitdash/internal/repository"
	"github.com/limbo/fitdash/internal/session"
	"github.com/limbo/fitdash/pkg/entity"
)

// DashboardSources is one reader/writer per row collection the dashboard joins.
type DashboardSources struct {
	Profiles repository.ProfilesRepositoryI
	Weights  repository.WeightLogsRepositoryI
	Water    repository.WaterLogsRepositoryI
	Steps    repository.DailyStepsRepositoryI
	Streaks  repository.StreaksRepositoryI
	Meals    repository.MealLogsRepositoryI
	Workouts repository.WorkoutLogsRepositoryI
}

func (src DashboardSources) complete() bool {
	return src.Profiles != nil && src.Weights != nil && src.Water != nil && src.Steps != nil &&
		src.Streaks != nil && src.Meals != nil && src.Workouts != nil
}

// DashboardState is what presentation code reads. Metrics is nil before the first successful load.
type DashboardState struct {
	Metrics     *entity.DashboardMetrics `json:"metrics"`
	WeeklySteps []entity.WeeklyStepData  `json:"weekly_steps"`
	Loading     bool                     `json:"loading"`
	Error       string                   `json:"error,omitempty"`
	Version     uint64                   `json:"version"`
}

type dashboardOptions struct {
	now         func() time.Time
	location    *time.Location
	waterTarget int
	stepTarget  int
	logger      *slog.Logger
}

type DashboardOption func(*dashboardOptions)

func WithClock(now func() time.Time) DashboardOption {
	return func(o *dashboardOptions) { o.now = now }
}

// WithLocation sets the viewer's time zone used to decide what "today" is.
func WithLocation(location *time.Location) DashboardOption {
	return func(o *dashboardOptions) { o.location = location }
}

func WithWaterTarget(ml int) DashboardOption {
	return func(o *dashboardOptions) {
		if ml > 0 {
			o.waterTarget = ml
		}
	}
}

func WithStepTarget(steps int) DashboardOption {
	return func(o *dashboardOptions) {
		if steps > 0 {
			o.stepTarget = steps
		}
	}
}

func WithLogger(logger *slog.Logger) DashboardOption {
	return func(o *dashboardOptions) { o.logger = logger }
}

// Dashboard aggregates one user's logs into a snapshot and owns that snapshot.
// Every successful write invalidates the snapshot, which triggers a full refetch.
// Overlapping refreshes are not sequenced: the last one to finish wins.
type Dashboard struct {
	session session.Provider
	src     DashboardSources
	opts    dashboardOptions

	mu        sync.RWMutex
	state     DashboardState
	listeners []func(DashboardState)

	invalidations atomic.Uint64
}

func NewDashboard(sess session.Provider, src DashboardSources, opts ...DashboardOption) *Dashboard {
	if sess == nil || !src.complete() {
		log.Fatal("on dashboard provided nil session or repos")
	}
	InitValidator()
	o := dashboardOptions{
		now:         time.Now,
		location:    time.Local,
		waterTarget: DefaultWaterTargetML,
		stepTarget:  DefaultStepTarget,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Dashboard{
		session: sess,
		src:     src,
		opts:    o,
		state:   DashboardState{WeeklySteps: []entity.WeeklyStepData{}},
	}
}

// State returns a copy of the current snapshot state.
func (d *Dashboard) State() DashboardState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.copyStateLocked()
}

func (d *Dashboard) copyStateLocked() DashboardState {
	st := d.state
	st.WeeklySteps = append([]entity.WeeklyStepData(nil), d.state.WeeklySteps...)
	if d.state.Metrics != nil {
		m := *d.state.Metrics
		m.DegradedSources = append([]string(nil), d.state.Metrics.DegradedSources...)
		st.Metrics = &m
	}
	return st
}

// OnRefresh registers fn to be called with the new state after every successful refresh.
func (d *Dashboard) OnRefresh(fn func(DashboardState)) {
	d.mu.Lock()
	d.listeners = append(d.listeners, fn)
	d.mu.Unlock()
}

// Invalidations counts how many times the snapshot was marked stale.
func (d *Dashboard) Invalidations() uint64 {
	return d.invalidations.Load()
}

// Refetch is FetchDashboardMetrics under the name presentation code uses.
func (d *Dashboard) Refetch(ctx context.Context) error {
	return d.FetchDashboardMetrics(ctx)
}

// FetchDashboardMetrics runs a full aggregation pass. Failures of single sources degrade
// to defaults. Missing session and failures outside of the tolerant sources are stored in
// the state and returned; the previous snapshot stays in place.
func (d *Dashboard) FetchDashboardMetrics(ctx context.Context) error {
	uid, err := d.session.CurrentUserID(ctx)
	if err != nil {
		d.opts.logger.Error("dashboard fetch without session", slog.String("error", err.Error()))
		d.recordError(err)
		return err
	}
	logger := d.opts.logger.With(slog.String("uid", uid.String()))
	d.setLoading(true)

	now := d.opts.now()
	metrics, err := d.aggregate(ctx, uid, now, logger)
	if err != nil {
		err = fmt.Errorf("%w: %s", errorvalues.ErrAggregation, err.Error())
		logger.Error("dashboard aggregation failed", slog.String("error", err.Error()))
		d.recordError(err)
		return err
	}
	d.mu.Lock()
	d.state.Metrics = metrics
	d.state.Error = ""
	d.state.Version++
	d.mu.Unlock()

	weekly, err := d.weeklySteps(ctx, uid, now)
	if err != nil {
		logger.Warn("weekly steps refresh failed", slog.String("error", err.Error()))
	}

	d.mu.Lock()
	if err == nil {
		d.state.WeeklySteps = weekly
	}
	d.state.Loading = false
	st := d.copyStateLocked()
	listeners := append([]func(DashboardState){}, d.listeners...)
	d.mu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
	return nil
}

func (d *Dashboard) setLoading(loading bool) {
	d.mu.Lock()
	d.state.Loading = loading
	d.mu.Unlock()
}

func (d *Dashboard) recordError(err error) {
	d.mu.Lock()
	d.state.Error = err.Error()
	d.state.Loading = false
	d.mu.Unlock()
}

type weekActivity struct {
	water    SourceResult[[]entity.WaterLog]
	steps    SourceResult[[]entity.DailyStep]
	workouts SourceResult[[]entity.WorkoutLog]
	meals    SourceResult[[]entity.MealLog]
}

func (d *Dashboard) aggregate(ctx context.Context, uid uuid.UUID, now time.Time, logger *slog.Logger) (*entity.DashboardMetrics, error) {
	loc := d.opts.location
	today := DateAtLocation(now, loc)
	todayISO := today.Format(isoDateLayout)
	dayStart, dayEnd := DayRange(now, loc)
	weekStart := today.AddDate(0, 0, -(weekDays - 1))

	profile, err := d.src.Profiles.GetByUserID(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, errors.New("fetching profile error: " + err.Error())
		}
		profile = nil
	}
	weights, err := d.src.Weights.ListRecent(ctx, uid, 2)
	if err != nil {
		return nil, errors.New("fetching weight logs error: " + err.Error())
	}

	water := fetchSource(ctx, SourceWater, func(ctx context.Context) ([]entity.WaterLog, error) {
		return d.src.Water.ListByRange(ctx, uid, dayStart, dayEnd)
	})
	steps := fetchSource(ctx, SourceSteps, func(ctx context.Context) (*entity.DailyStep, error) {
		return d.src.Steps.GetByDate(ctx, uid, todayISO)
	})
	streaks := fetchSource(ctx, SourceStreaks, func(ctx context.Context) ([]entity.UserStreak, error) {
		return d.src.Streaks.ListByUserID(ctx, uid)
	})
	meals := fetchSource(ctx, SourceMeals, func(ctx context.Context) ([]entity.MealLog, error) {
		return d.src.Meals.ListByDateRange(ctx, uid, todayISO, todayISO)
	})
	workouts := fetchSource(ctx, SourceWorkouts, func(ctx context.Context) ([]entity.WorkoutLog, error) {
		return d.src.Workouts.ListByRange(ctx, uid, dayStart, dayEnd)
	})
	week := d.fetchWeekActivity(ctx, uid, weekStart, dayEnd)

	deg := &degradation{logger: logger}
	in := MetricsInput{
		UserID:        uid,
		Profile:       profile,
		RecentWeights: weights,
		TodayWater:    resolve(deg, water),
		TodaySteps:    resolve(deg, steps),
		Streaks:       resolve(deg, streaks),
		TodayMeals:    resolve(deg, meals),
		TodayWorkouts: resolve(deg, workouts),
		WaterTargetML: d.opts.waterTarget,
		StepTarget:    d.opts.stepTarget,
		Now:           now,
	}
	in.ActiveDays = ActiveDays(
		datesOf(resolve(deg, week.water), func(l entity.WaterLog) string { return isoDate(l.LoggedAt, loc) }),
		datesOf(resolve(deg, week.steps), func(s entity.DailyStep) string { return s.RecordedDate }),
		datesOf(resolve(deg, week.workouts), func(w entity.WorkoutLog) string { return isoDate(w.LoggedAt, loc) }),
		datesOf(resolve(deg, week.meals), func(m entity.MealLog) string { return m.MealDate }),
	)
	in.DegradedSources = deg.sources
	return BuildDashboardMetrics(in), nil
}

// fetchWeekActivity issues the four trailing-week reads concurrently. Each result keeps its own error.
func (d *Dashboard) fetchWeekActivity(ctx context.Context, uid uuid.UUID, weekStart, dayEnd time.Time) weekActivity {
	from, to := weekStart.Format(isoDateLayout), dayEnd.AddDate(0, 0, -1).Format(isoDateLayout)
	var week weekActivity
	var g errgroup.Group
	g.Go(func() error {
		week.water = fetchSource(ctx, SourceWeekWater, func(ctx context.Context) ([]entity.WaterLog, error) {
			return d.src.Water.ListByRange(ctx, uid, weekStart, dayEnd)
		})
		return nil
	})
	g.Go(func() error {
		week.steps = fetchSource(ctx, SourceWeekSteps, func(ctx context.Context) ([]entity.DailyStep, error) {
			return d.src.Steps.ListByDateRange(ctx, uid, from, to)
		})
		return nil
	})
	g.Go(func() error {
		week.workouts = fetchSource(ctx, SourceWeekWorkouts, func(ctx context.Context) ([]entity.WorkoutLog, error) {
			return d.src.Workouts.ListByRange(ctx, uid, weekStart, dayEnd)
		})
		return nil
	})
	g.Go(func() error {
		week.meals = fetchSource(ctx, SourceWeekMeals, func(ctx context.Context) ([]entity.MealLog, error) {
			return d.src.Meals.ListByDateRange(ctx, uid, from, to)
		})
		return nil
	})
	_ = g.Wait()
	return week
}

func (d *Dashboard) weeklySteps(ctx context.Context, uid uuid.UUID, now time.Time) ([]entity.WeeklyStepData, error) {
	today := DateAtLocation(now, d.opts.location)
	dates := WeekDates(today)
	rows, err := d.src.Steps.ListByDateRange(ctx, uid, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, errors.New("fetching weekly steps error: " + err.Error())
	}
	return BuildWeeklySteps(rows, today, d.opts.stepTarget), nil
}

// Invalidate marks the snapshot stale and refreshes it. A failed refresh is kept in the state.
func (d *Dashboard) Invalidate(ctx context.Context) {
	d.invalidations.Add(1)
	_ = d.FetchDashboardMetrics(ctx)
}

func persistenceFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %s", errorvalues.ErrPersistence, op, err.Error())
}

func (d *Dashboard) LogWaterIntake(ctx context.Context, amountML int) error {
	uid, err := d.session.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	if err = validate.Var(amountML, "gt=0,lte=10000"); err != nil {
		return invalidLogData(err)
	}
	_, err = d.src.Water.Create(ctx, &entity.WaterLog{UserID: uid, AmountML: amountML})
	if err != nil {
		return persistenceFailure("logging water intake", err)
	}
	d.Invalidate(ctx)
	return nil
}

// LogDailySteps overwrites the step count of date. Empty date means today.
func (d *Dashboard) LogDailySteps(ctx context.Context, stepCount int, date string) error {
	uid, err := d.session.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	if date == "" {
		date = isoDate(d.opts.now(), d.opts.location)
	}
	req := logStepsRequest{StepCount: stepCount, Date: date}
	if err = validate.Struct(req); err != nil {
		return invalidLogData(err)
	}
	err = d.src.Steps.Upsert(ctx, &entity.DailyStep{UserID: uid, StepCount: stepCount, RecordedDate: date})
	if err != nil {
		return persistenceFailure("logging daily steps", err)
	}
	d.Invalidate(ctx)
	return nil
}

func (d *Dashboard) LogMeal(ctx context.Context, req LogMealRequest) error {
	uid, err := d.session.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	if err = validate.Struct(req); err != nil {
		return invalidLogData(err)
	}
	if req.MealDate == "" {
		req.MealDate = isoDate(d.opts.now(), d.opts.location)
	}
	meal := entity.MealLog{
		UserID:        uid,
		MealDate:      req.MealDate,
		MealType:      req.MealType,
		FoodName:      req.FoodName,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fat:           req.Fat,
	}
	if _, err = d.src.Meals.Create(ctx, &meal, req.Quantity); err != nil {
		return persistenceFailure("logging meal", err)
	}
	d.Invalidate(ctx)
	return nil
}

func (d *Dashboard) LogWorkout(ctx context.Context, req LogWorkoutRequest) error {
	uid, err := d.session.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	if err = validate.Struct(req); err != nil {
		return invalidLogData(err)
	}
	_, err = d.src.Workouts.Create(ctx, &entity.WorkoutLog{
		UserID:          uid,
		WorkoutName:     req.WorkoutName,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           req.Notes,
	})
	if err != nil {
		return persistenceFailure("logging workout", err)
	}
	d.Invalidate(ctx)
	return nil
}

func (d *Dashboard) LogWeight(ctx context.Context, weightKG float64) error {
	uid, err := d.session.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	if err = validate.Var(weightKG, "gt=0,lte=500"); err != nil {
		return invalidLogData(err)
	}
	if _, err = d.src.Weights.Create(ctx, &entity.WeightLog{UserID: uid, WeightKG: weightKG}); err != nil {
		return persistenceFailure("logging weight", err)
	}
	d.Invalidate(ctx)
	return nil
}

// UpdateActivitySummary persists nothing. It tells the dashboard that something was logged elsewhere.
func (d *Dashboard) UpdateActivitySummary(ctx context.Context, flags ActivityFlags) error {
	uid, err := d.session.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	d.opts.logger.Debug("activity summary update",
		slog.String("uid", uid.String()),
		slog.Bool("water", flags.Water),
		slog.Bool("steps", flags.Steps),
		slog.Bool("meal", flags.Meal),
		slog.Bool("workout", flags.Workout),
	)
	d.Invalidate(ctx)
	return nil
}
