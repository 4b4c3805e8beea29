package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/fitdash/internal/error_values"
	"github.com/limbo/fitdash/internal/service"
	"github.com/limbo/fitdash/internal/session"
	"github.com/limbo/fitdash/pkg/entity"
)

var (
	fixedNow = time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)
	dbErr    = errors.New("relation does not exist")
)

func at(date string, hour int) time.Time {
	d, _ := time.Parse("2006-01-02", date)
	return d.Add(time.Duration(hour) * time.Hour)
}

func ptr[T any](v T) *T {
	return &v
}

// seed fills the store with one week of activity of uid.
func seed(s *store, uid uuid.UUID) {
	s.mu.Lock()
	s.profiles[uid] = entity.UserProfile{UserID: uid, Height: 170, Weight: 70, TargetWeight: ptr(65.0), Goal: ptr("lose_weight")}
	s.weights = append(s.weights,
		entity.WeightLog{UserID: uid, WeightKG: 72, LoggedAt: at("2025-03-10", 8)},
		entity.WeightLog{UserID: uid, WeightKG: 71, LoggedAt: at("2025-03-13", 8)},
	)
	s.water = append(s.water,
		entity.WaterLog{UserID: uid, AmountML: 500, LoggedAt: at("2025-03-14", 8)},
		entity.WaterLog{UserID: uid, AmountML: 750, LoggedAt: at("2025-03-14", 10)},
		entity.WaterLog{UserID: uid, AmountML: 300, LoggedAt: at("2025-03-12", 10)},
	)
	s.streaks = append(s.streaks,
		entity.UserStreak{UserID: uid, StreakType: entity.StreakWorkout, CurrentCount: 3},
		entity.UserStreak{UserID: uid, StreakType: entity.StreakHydration, CurrentCount: 5},
		entity.UserStreak{UserID: uid, StreakType: "mystery", CurrentCount: 9},
	)
	s.meals = append(s.meals,
		entity.MealLog{UserID: uid, MealDate: "2025-03-14", FoodName: "oatmeal", Calories: 300, Protein: 10, Carbohydrates: 50, Fat: 6},
		entity.MealLog{UserID: uid, MealDate: "2025-03-14", FoodName: "chicken", Calories: 500, Protein: 30, Carbohydrates: 60, Fat: 20},
		entity.MealLog{UserID: uid, MealDate: "2025-03-07", FoodName: "pizza", Calories: 900},
	)
	s.workouts = append(s.workouts,
		entity.WorkoutLog{UserID: uid, WorkoutName: "run", DurationMinutes: 30, CaloriesBurned: 280, LoggedAt: at("2025-03-14", 7)},
		entity.WorkoutLog{UserID: uid, WorkoutName: "swim", DurationMinutes: 45, CaloriesBurned: 400, LoggedAt: at("2025-03-09", 18)},
	)
	s.mu.Unlock()
	s.setSteps(uid, "2025-03-14", 5000)
	s.setSteps(uid, "2025-03-11", 12000)
}

func newTestDashboard(s *store, sess session.Provider) *service.Dashboard {
	return service.NewDashboard(sess, s.sources(),
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithLocation(time.UTC),
	)
}

func TestFetchDashboardMetrics(t *testing.T) {
	uid := uuid.New()
	s := newStore(fixedNow)
	seed(s, uid)
	d := newTestDashboard(s, session.Static(uid))

	require.NoError(t, d.FetchDashboardMetrics(context.Background()))
	st := d.State()
	require.NotNil(t, st.Metrics)
	m := st.Metrics

	assert.Equal(t, uid, m.UserID)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	assert.Empty(t, m.DegradedSources)

	assert.Equal(t, 1250, m.TodayWaterML)
	assert.Equal(t, service.DefaultWaterTargetML, m.WaterTargetML)
	assert.Equal(t, 50, m.WaterCompletionPercentage)
	assert.Equal(t, 5000, m.TodaySteps)
	assert.Equal(t, 50, m.StepCompletionPercentage)

	assert.Equal(t, 800.0, m.TodayCalories)
	assert.Equal(t, 40.0, m.TodayProtein)
	assert.Equal(t, 110.0, m.TodayCarbohydrates)
	assert.Equal(t, 26.0, m.TodayFat)
	assert.Equal(t, 2, m.MealsLoggedToday)
	assert.Equal(t, 1, m.WorkoutsToday)
	assert.Equal(t, 30, m.TodayWorkoutMinutes)
	assert.Equal(t, 280.0, m.TodayCaloriesBurned)

	assert.Equal(t, 3, m.WorkoutStreak)
	assert.Equal(t, 5, m.HydrationStreak)
	assert.Zero(t, m.NutritionStreak)
	assert.Zero(t, m.OverallStreak)
	assert.Zero(t, m.LoginStreak)

	// 03-14 every source, 03-12 water, 03-11 steps, 03-09 workout. 03-07 is outside of the window.
	assert.Equal(t, 4, m.ActiveDaysThisWeek)

	require.NotNil(t, m.CurrentWeight)
	assert.Equal(t, 71.0, *m.CurrentWeight)
	assert.Equal(t, 72.0, *m.PreviousWeight)
	assert.Equal(t, -1.0, *m.WeightChange)
	require.NotNil(t, m.BMI)
	assert.InDelta(t, 24.567, *m.BMI, 0.001)
	assert.Equal(t, service.BMINormal, m.BMICategory)
	assert.Zero(t, m.ProgressPercentage)
	assert.Equal(t, fixedNow, m.ComputedAt)

	require.Len(t, st.WeeklySteps, 7)
	assert.Equal(t, "2025-03-08", st.WeeklySteps[0].Date)
	assert.Equal(t, "2025-03-14", st.WeeklySteps[6].Date)
	assert.Equal(t, 12000, st.WeeklySteps[3].StepCount)
	assert.Equal(t, 120, st.WeeklySteps[3].CompletionPercentage)
	assert.Equal(t, 5000, st.WeeklySteps[6].StepCount)
	assert.Zero(t, st.WeeklySteps[0].StepCount)
	assert.Equal(t, uint64(1), st.Version)
}

func TestFetchWithoutSession(t *testing.T) {
	s := newStore(fixedNow)
	d := newTestDashboard(s, session.None{})

	err := d.FetchDashboardMetrics(context.Background())
	assert.ErrorIs(t, err, errorvalues.ErrUnauthenticated)
	st := d.State()
	assert.Nil(t, st.Metrics)
	assert.Empty(t, st.WeeklySteps)
	assert.Equal(t, errorvalues.ErrUnauthenticated.Error(), st.Error)
	assert.False(t, st.Loading)
	assert.Zero(t, s.totalCalls())
}

func TestTolerantSources(t *testing.T) {
	testCases := []struct {
		Desc     string
		FailOps  []string
		Degraded []string
		Check    func(t *testing.T, m *entity.DashboardMetrics)
	}{
		{
			Desc:     "water",
			FailOps:  []string{"water.list"},
			Degraded: []string{service.SourceWater, service.SourceWeekWater},
			Check: func(t *testing.T, m *entity.DashboardMetrics) {
				assert.Zero(t, m.TodayWaterML)
				assert.Zero(t, m.WaterCompletionPercentage)
				assert.Equal(t, 5000, m.TodaySteps)
				// 03-12 only had water
				assert.Equal(t, 3, m.ActiveDaysThisWeek)
			},
		},
		{
			Desc:     "streaks",
			FailOps:  []string{"streaks.list"},
			Degraded: []string{service.SourceStreaks},
			Check: func(t *testing.T, m *entity.DashboardMetrics) {
				assert.Zero(t, m.WorkoutStreak)
				assert.Zero(t, m.HydrationStreak)
				assert.Equal(t, 1250, m.TodayWaterML)
			},
		},
		{
			Desc:     "today steps",
			FailOps:  []string{"steps.get"},
			Degraded: []string{service.SourceSteps},
			Check: func(t *testing.T, m *entity.DashboardMetrics) {
				assert.Zero(t, m.TodaySteps)
				assert.Equal(t, 4, m.ActiveDaysThisWeek)
			},
		},
		{
			Desc:    "every tolerant source",
			FailOps: []string{"water.list", "steps.get", "steps.list", "streaks.list", "meals.list", "workouts.list"},
			Degraded: []string{service.SourceWater, service.SourceSteps, service.SourceStreaks, service.SourceMeals,
				service.SourceWorkouts, service.SourceWeekWater, service.SourceWeekSteps, service.SourceWeekWorkouts, service.SourceWeekMeals},
			Check: func(t *testing.T, m *entity.DashboardMetrics) {
				assert.Zero(t, m.TodayWaterML)
				assert.Zero(t, m.MealsLoggedToday)
				assert.Zero(t, m.WorkoutsToday)
				assert.Zero(t, m.ActiveDaysThisWeek)
				require.NotNil(t, m.BMI)
				assert.Equal(t, service.BMINormal, m.BMICategory)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			uid := uuid.New()
			s := newStore(fixedNow)
			seed(s, uid)
			for _, op := range tc.FailOps {
				s.failOn(op, dbErr)
			}
			d := newTestDashboard(s, session.Static(uid))

			require.NoError(t, d.FetchDashboardMetrics(context.Background()))
			st := d.State()
			require.NotNil(t, st.Metrics)
			assert.Empty(t, st.Error)
			assert.ElementsMatch(t, tc.Degraded, st.Metrics.DegradedSources)
			tc.Check(t, st.Metrics)
		})
	}
}

func TestAggregationFailureKeepsPreviousSnapshot(t *testing.T) {
	for _, op := range []string{"profiles.get", "weights.recent"} {
		t.Run(op, func(t *testing.T) {
			uid := uuid.New()
			s := newStore(fixedNow)
			seed(s, uid)
			d := newTestDashboard(s, session.Static(uid))
			require.NoError(t, d.FetchDashboardMetrics(context.Background()))
			before := d.State()

			s.failOn(op, dbErr)
			err := d.FetchDashboardMetrics(context.Background())
			assert.ErrorIs(t, err, errorvalues.ErrAggregation)

			after := d.State()
			assert.Equal(t, before.Metrics, after.Metrics)
			assert.Equal(t, before.WeeklySteps, after.WeeklySteps)
			assert.Equal(t, before.Version, after.Version)
			assert.Contains(t, after.Error, errorvalues.ErrAggregation.Error())
			assert.False(t, after.Loading)
		})
	}
}

func TestMissingProfile(t *testing.T) {
	uid := uuid.New()
	s := newStore(fixedNow)
	d := newTestDashboard(s, session.Static(uid))

	require.NoError(t, d.FetchDashboardMetrics(context.Background()))
	m := d.State().Metrics
	require.NotNil(t, m)
	assert.Nil(t, m.BMI)
	assert.Empty(t, m.BMICategory)
	assert.Nil(t, m.CurrentWeight)
	assert.Zero(t, m.ProgressPercentage)
	assert.Zero(t, m.ActiveDaysThisWeek)
}

func TestWeeklyStepsFailIndependently(t *testing.T) {
	uid := uuid.New()
	s := newStore(fixedNow)
	seed(s, uid)
	d := newTestDashboard(s, session.Static(uid))
	require.NoError(t, d.FetchDashboardMetrics(context.Background()))
	weekBefore := d.State().WeeklySteps

	s.setSteps(uid, "2025-03-14", 9000)
	s.failOn("steps.list", dbErr)
	require.NoError(t, d.FetchDashboardMetrics(context.Background()))

	st := d.State()
	assert.Equal(t, 9000, st.Metrics.TodaySteps)
	assert.Equal(t, weekBefore, st.WeeklySteps)
	assert.Contains(t, st.Metrics.DegradedSources, service.SourceWeekSteps)
}

func TestWriteOperations(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	s := newStore(fixedNow)
	s.profiles[uid] = entity.UserProfile{UserID: uid, Height: 180, Weight: 80}
	d := newTestDashboard(s, session.Static(uid))

	t.Run("water", func(t *testing.T) {
		require.NoError(t, d.LogWaterIntake(ctx, 500))
		assert.Equal(t, 500, d.State().Metrics.TodayWaterML)
		assert.Equal(t, uint64(1), d.Invalidations())
	})
	t.Run("steps for today", func(t *testing.T) {
		require.NoError(t, d.LogDailySteps(ctx, 4000, ""))
		require.NoError(t, d.LogDailySteps(ctx, 6500, ""))
		st := d.State()
		assert.Equal(t, 6500, st.Metrics.TodaySteps)
		assert.Equal(t, 65, st.Metrics.StepCompletionPercentage)
		assert.Equal(t, 6500, st.WeeklySteps[6].StepCount)
		assert.Len(t, s.steps[uid], 1)
	})
	t.Run("steps for another date", func(t *testing.T) {
		require.NoError(t, d.LogDailySteps(ctx, 3000, "2025-03-12"))
		st := d.State()
		assert.Equal(t, 3000, st.WeeklySteps[4].StepCount)
		assert.Equal(t, 6500, st.Metrics.TodaySteps)
	})
	t.Run("meal with defaults", func(t *testing.T) {
		require.NoError(t, d.LogMeal(ctx, service.LogMealRequest{FoodName: "apple", Calories: 95}))
		require.Len(t, s.meals, 1)
		assert.Equal(t, "snack", s.meals[0].MealType)
		assert.Equal(t, 1.0, s.meals[0].Quantity)
		assert.Equal(t, "2025-03-14", s.meals[0].MealDate)
		assert.Equal(t, 95.0, d.State().Metrics.TodayCalories)
	})
	t.Run("workout", func(t *testing.T) {
		require.NoError(t, d.LogWorkout(ctx, service.LogWorkoutRequest{WorkoutName: "bike", DurationMinutes: 40, CaloriesBurned: 350}))
		m := d.State().Metrics
		assert.Equal(t, 1, m.WorkoutsToday)
		assert.Equal(t, 40, m.TodayWorkoutMinutes)
	})
	t.Run("weight", func(t *testing.T) {
		require.NoError(t, d.LogWeight(ctx, 79))
		m := d.State().Metrics
		require.NotNil(t, m.CurrentWeight)
		assert.Equal(t, 79.0, *m.CurrentWeight)
		assert.Nil(t, m.PreviousWeight)
	})
	t.Run("activity summary refreshes only", func(t *testing.T) {
		before := s.callsOf("water.create")
		invalidations := d.Invalidations()
		require.NoError(t, d.UpdateActivitySummary(ctx, service.ActivityFlags{Water: true}))
		assert.Equal(t, before, s.callsOf("water.create"))
		assert.Equal(t, invalidations+1, d.Invalidations())
	})
	t.Run("active days", func(t *testing.T) {
		// today from every write and 03-12 from steps
		assert.Equal(t, 2, d.State().Metrics.ActiveDaysThisWeek)
	})
}

func TestWriteErrors(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	t.Run("no session", func(t *testing.T) {
		s := newStore(fixedNow)
		d := newTestDashboard(s, session.None{})
		assert.ErrorIs(t, d.LogWaterIntake(ctx, 250), errorvalues.ErrUnauthenticated)
		assert.ErrorIs(t, d.LogDailySteps(ctx, 100, ""), errorvalues.ErrUnauthenticated)
		assert.ErrorIs(t, d.LogMeal(ctx, service.LogMealRequest{FoodName: "apple"}), errorvalues.ErrUnauthenticated)
		assert.ErrorIs(t, d.LogWorkout(ctx, service.LogWorkoutRequest{WorkoutName: "run", DurationMinutes: 10}), errorvalues.ErrUnauthenticated)
		assert.ErrorIs(t, d.LogWeight(ctx, 70), errorvalues.ErrUnauthenticated)
		assert.ErrorIs(t, d.UpdateActivitySummary(ctx, service.ActivityFlags{}), errorvalues.ErrUnauthenticated)
		assert.Zero(t, s.totalCalls())
		assert.Zero(t, d.Invalidations())
	})
	t.Run("invalid data", func(t *testing.T) {
		s := newStore(fixedNow)
		d := newTestDashboard(s, session.Static(uid))
		assert.ErrorIs(t, d.LogWaterIntake(ctx, 0), errorvalues.ErrInvalidLogData)
		assert.ErrorIs(t, d.LogDailySteps(ctx, -5, ""), errorvalues.ErrInvalidLogData)
		assert.ErrorIs(t, d.LogDailySteps(ctx, 100, "14.03.2025"), errorvalues.ErrInvalidLogData)
		assert.ErrorIs(t, d.LogMeal(ctx, service.LogMealRequest{}), errorvalues.ErrInvalidLogData)
		assert.ErrorIs(t, d.LogMeal(ctx, service.LogMealRequest{FoodName: "apple", MealType: "brunch"}), errorvalues.ErrInvalidLogData)
		assert.ErrorIs(t, d.LogWorkout(ctx, service.LogWorkoutRequest{WorkoutName: "run"}), errorvalues.ErrInvalidLogData)
		assert.ErrorIs(t, d.LogWeight(ctx, -1), errorvalues.ErrInvalidLogData)
		assert.Zero(t, s.totalCalls())
	})
	t.Run("persistence failure skips refresh", func(t *testing.T) {
		s := newStore(fixedNow)
		s.failOn("water.create", dbErr)
		s.failOn("steps.upsert", dbErr)
		d := newTestDashboard(s, session.Static(uid))

		err := d.LogWaterIntake(ctx, 250)
		assert.ErrorIs(t, err, errorvalues.ErrPersistence)
		assert.ErrorIs(t, d.LogDailySteps(ctx, 100, ""), errorvalues.ErrPersistence)
		assert.Zero(t, d.Invalidations())
		assert.Nil(t, d.State().Metrics)
		assert.Zero(t, s.callsOf("profiles.get"))
	})
	t.Run("failed refresh after write", func(t *testing.T) {
		s := newStore(fixedNow)
		s.failOn("profiles.get", dbErr)
		d := newTestDashboard(s, session.Static(uid))

		require.NoError(t, d.LogWaterIntake(ctx, 250))
		assert.Len(t, s.water, 1)
		assert.Contains(t, d.State().Error, errorvalues.ErrAggregation.Error())
	})
}

func TestOnRefresh(t *testing.T) {
	uid := uuid.New()
	s := newStore(fixedNow)
	d := newTestDashboard(s, session.Static(uid))
	var got []service.DashboardState
	d.OnRefresh(func(st service.DashboardState) {
		got = append(got, st)
	})

	require.NoError(t, d.LogWaterIntake(context.Background(), 300))
	s.failOn("weights.recent", dbErr)
	assert.Error(t, d.Refetch(context.Background()))

	require.Len(t, got, 1)
	assert.Equal(t, 300, got[0].Metrics.TodayWaterML)
}

func TestConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	s := newStore(fixedNow)
	d := newTestDashboard(s, session.Static(uid))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.LogWaterIntake(ctx, 100))
			_ = d.State()
		}()
	}
	wg.Wait()
	require.NoError(t, d.Refetch(ctx))

	assert.Equal(t, 2000, d.State().Metrics.TodayWaterML)
	assert.Equal(t, uint64(20), d.Invalidations())
}

type recordingPublisher struct {
	mu     sync.Mutex
	events map[uuid.UUID][]string
}

func (p *recordingPublisher) Broadcast(uid uuid.UUID, event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := payload.(service.DashboardState); !ok {
		return
	}
	p.events[uid] = append(p.events[uid], event)
}

func TestDashboardHub(t *testing.T) {
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	s := newStore(fixedNow)
	seed(s, alice)
	pub := &recordingPublisher{events: make(map[uuid.UUID][]string)}
	hub := service.NewDashboardHub(s.sources(), pub,
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithLocation(time.UTC),
		service.WithWaterTarget(2000),
	)

	st, err := hub.Refresh(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1250, st.Metrics.TodayWaterML)
	assert.Equal(t, 63, st.Metrics.WaterCompletionPercentage)

	st, err = hub.LogWaterIntake(ctx, bob, 400)
	require.NoError(t, err)
	assert.Equal(t, 400, st.Metrics.TodayWaterML)
	assert.Equal(t, bob, st.Metrics.UserID)

	assert.Equal(t, 1250, hub.Snapshot(alice).Metrics.TodayWaterML)
	assert.Equal(t, []string{service.EventDashboardRefreshed}, pub.events[alice])
	assert.Equal(t, []string{service.EventDashboardRefreshed}, pub.events[bob])

	assert.Nil(t, hub.Snapshot(uuid.New()).Metrics)
}
