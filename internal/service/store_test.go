package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fitdash/internal/error_values"
	"github.com/limbo/fitdash/internal/service"
	"github.com/limbo/fitdash/pkg/entity"
)

// store is an in-memory backend for all dashboard sources. Every operation can be made to fail.
type store struct {
	mu    sync.Mutex
	now   time.Time
	fail  map[string]error
	calls map[string]int

	profiles map[uuid.UUID]entity.UserProfile
	weights  []entity.WeightLog
	water    []entity.WaterLog
	steps    map[uuid.UUID]map[string]int
	streaks  []entity.UserStreak
	meals    []entity.MealLog
	workouts []entity.WorkoutLog
}

func newStore(now time.Time) *store {
	return &store{
		now:      now,
		fail:     make(map[string]error),
		calls:    make(map[string]int),
		profiles: make(map[uuid.UUID]entity.UserProfile),
		steps:    make(map[uuid.UUID]map[string]int),
	}
}

func (s *store) sources() service.DashboardSources {
	return service.DashboardSources{
		Profiles: fakeProfiles{s},
		Weights:  fakeWeights{s},
		Water:    fakeWater{s},
		Steps:    fakeSteps{s},
		Streaks:  fakeStreaks{s},
		Meals:    fakeMeals{s},
		Workouts: fakeWorkouts{s},
	}
}

func (s *store) failOn(op string, err error) {
	s.mu.Lock()
	s.fail[op] = err
	s.mu.Unlock()
}

func (s *store) callsOf(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *store) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// hit must be called with mu held.
func (s *store) hit(op string) error {
	s.calls[op]++
	return s.fail[op]
}

func (s *store) setSteps(uid uuid.UUID, date string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.steps[uid] == nil {
		s.steps[uid] = make(map[string]int)
	}
	s.steps[uid][date] = count
}

type fakeProfiles struct{ s *store }

func (f fakeProfiles) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("profiles.get"); err != nil {
		return nil, err
	}
	p, ok := f.s.profiles[uid]
	if !ok {
		return nil, errorvalues.ErrProfileNotFound
	}
	return &p, nil
}

func (f fakeProfiles) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("profiles.upsert"); err != nil {
		return err
	}
	f.s.profiles[profile.UserID] = *profile
	return nil
}

type fakeWeights struct{ s *store }

func (f fakeWeights) Create(ctx context.Context, log *entity.WeightLog) (uuid.UUID, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("weights.create"); err != nil {
		return uuid.Nil, err
	}
	l := *log
	l.ID = uuid.New()
	l.LoggedAt = f.s.now
	f.s.weights = append(f.s.weights, l)
	return l.ID, nil
}

func (f fakeWeights) ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]entity.WeightLog, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("weights.recent"); err != nil {
		return nil, err
	}
	var logs []entity.WeightLog
	for _, l := range f.s.weights {
		if l.UserID == uid {
			logs = append(logs, l)
		}
	}
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].LoggedAt.After(logs[j].LoggedAt) })
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

type fakeWater struct{ s *store }

func (f fakeWater) Create(ctx context.Context, log *entity.WaterLog) (uuid.UUID, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("water.create"); err != nil {
		return uuid.Nil, err
	}
	l := *log
	l.ID = uuid.New()
	l.LoggedAt = f.s.now
	f.s.water = append(f.s.water, l)
	return l.ID, nil
}

func (f fakeWater) ListByRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WaterLog, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("water.list"); err != nil {
		return nil, err
	}
	logs := make([]entity.WaterLog, 0)
	for _, l := range f.s.water {
		if l.UserID == uid && !l.LoggedAt.Before(from) && l.LoggedAt.Before(to) {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

type fakeSteps struct{ s *store }

func (f fakeSteps) Upsert(ctx context.Context, step *entity.DailyStep) error {
	f.s.mu.Lock()
	if err := f.s.hit("steps.upsert"); err != nil {
		f.s.mu.Unlock()
		return err
	}
	f.s.mu.Unlock()
	f.s.setSteps(step.UserID, step.RecordedDate, step.StepCount)
	return nil
}

func (f fakeSteps) GetByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyStep, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("steps.get"); err != nil {
		return nil, err
	}
	count, ok := f.s.steps[uid][date]
	if !ok {
		return nil, nil
	}
	return &entity.DailyStep{UserID: uid, StepCount: count, RecordedDate: date}, nil
}

func (f fakeSteps) ListByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.DailyStep, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("steps.list"); err != nil {
		return nil, err
	}
	rows := make([]entity.DailyStep, 0)
	for date, count := range f.s.steps[uid] {
		if date >= from && date <= to {
			rows = append(rows, entity.DailyStep{UserID: uid, StepCount: count, RecordedDate: date})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].RecordedDate < rows[j].RecordedDate })
	return rows, nil
}

type fakeStreaks struct{ s *store }

func (f fakeStreaks) ListByUserID(ctx context.Context, uid uuid.UUID) ([]entity.UserStreak, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("streaks.list"); err != nil {
		return nil, err
	}
	rows := make([]entity.UserStreak, 0)
	for _, r := range f.s.streaks {
		if r.UserID == uid {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

type fakeMeals struct{ s *store }

// Create applies the same defaults as the meal_logs table.
func (f fakeMeals) Create(ctx context.Context, meal *entity.MealLog, quantity *float64) (uuid.UUID, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("meals.create"); err != nil {
		return uuid.Nil, err
	}
	m := *meal
	m.ID = uuid.New()
	m.LoggedAt = f.s.now
	if m.MealType == "" {
		m.MealType = "snack"
	}
	m.Quantity = 1
	if quantity != nil {
		m.Quantity = *quantity
	}
	f.s.meals = append(f.s.meals, m)
	return m.ID, nil
}

func (f fakeMeals) ListByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.MealLog, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("meals.list"); err != nil {
		return nil, err
	}
	meals := make([]entity.MealLog, 0)
	for _, m := range f.s.meals {
		if m.UserID == uid && m.MealDate >= from && m.MealDate <= to {
			meals = append(meals, m)
		}
	}
	return meals, nil
}

type fakeWorkouts struct{ s *store }

func (f fakeWorkouts) Create(ctx context.Context, workout *entity.WorkoutLog) (uuid.UUID, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("workouts.create"); err != nil {
		return uuid.Nil, err
	}
	w := *workout
	w.ID = uuid.New()
	w.LoggedAt = f.s.now
	f.s.workouts = append(f.s.workouts, w)
	return w.ID, nil
}

func (f fakeWorkouts) ListByRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutLog, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.hit("workouts.list"); err != nil {
		return nil, err
	}
	workouts := make([]entity.WorkoutLog, 0)
	for _, w := range f.s.workouts {
		if w.UserID == uid && !w.LoggedAt.Before(from) && w.LoggedAt.Before(to) {
			workouts = append(workouts, w)
		}
	}
	return workouts, nil
}
