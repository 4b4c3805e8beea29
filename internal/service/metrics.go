package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/fitdash/pkg/entity"
)

const (
	DefaultWaterTargetML = 2500
	DefaultStepTarget    = 10000

	isoDateLayout = "2006-01-02"
	weekDays      = 7
)

const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
// Returns nil when either value is missing.
func CalculateBMI(heightCm, weightKg float64) *float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return nil
	}
	h := heightCm / 100
	bmi := weightKg / (h * h)
	return &bmi
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// ProgressPercentage is (target - current) / target * 100 rounded and clamped to [0, 100].
// It does not use a starting weight, so any gain above target clamps to 0.
func ProgressPercentage(current, target *float64) int {
	if current == nil || target == nil || *target == 0 {
		return 0
	}
	p := math.Round((*target - *current) / *target * 100)
	return int(math.Min(100, math.Max(0, p)))
}

// CompletionPercentage is round(value / target * 100). Not capped at 100.
func CompletionPercentage(value, target int) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(float64(value) / float64(target) * 100))
}

type StreakCounters struct {
	Workout   int
	Hydration int
	Nutrition int
	Overall   int
	Login     int
}

// MapStreaks ignores unknown streak types. Missing types stay 0.
func MapStreaks(rows []entity.UserStreak) StreakCounters {
	var c StreakCounters
	for _, r := range rows {
		switch r.StreakType {
		case entity.StreakWorkout:
			c.Workout = r.CurrentCount
		case entity.StreakHydration:
			c.Hydration = r.CurrentCount
		case entity.StreakNutrition:
			c.Nutrition = r.CurrentCount
		case entity.StreakOverall:
			c.Overall = r.CurrentCount
		case entity.StreakLogin:
			c.Login = r.CurrentCount
		}
	}
	return c
}

// ActiveDays counts distinct dates across all given date lists.
func ActiveDays(dateLists ...[]string) int {
	seen := make(map[string]struct{})
	for _, dates := range dateLists {
		for _, d := range dates {
			if d == "" {
				continue
			}
			seen[d] = struct{}{}
		}
	}
	return len(seen)
}

// BuildWeeklySteps returns exactly 7 entries for the days ending at today, oldest first.
// Days without a row get step_count 0. Rows outside of the window are ignored.
func BuildWeeklySteps(rows []entity.DailyStep, today time.Time, target int) []entity.WeeklyStepData {
	byDate := make(map[string]int, len(rows))
	for _, r := range rows {
		byDate[r.RecordedDate] = r.StepCount
	}
	week := make([]entity.WeeklyStepData, 0, weekDays)
	for _, day := range WeekDates(today) {
		count := byDate[day]
		week = append(week, entity.WeeklyStepData{
			Date:                 day,
			StepCount:            count,
			CompletionPercentage: CompletionPercentage(count, target),
		})
	}
	return week
}

// WeekDates lists the ISO dates of the 7 calendar days ending at today, oldest first.
func WeekDates(today time.Time) []string {
	dates := make([]string, 0, weekDays)
	for i := weekDays - 1; i >= 0; i-- {
		dates = append(dates, today.AddDate(0, 0, -i).Format(isoDateLayout))
	}
	return dates
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns [start of day, start of next day) for value in location.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func isoDate(t time.Time, location *time.Location) string {
	return DateAtLocation(t, location).Format(isoDateLayout)
}

// MetricsInput holds everything one aggregation pass read. Tolerant sources are already
// replaced by their zero values when they failed.
type MetricsInput struct {
	UserID          uuid.UUID
	Profile         *entity.UserProfile
	RecentWeights   []entity.WeightLog
	TodayWater      []entity.WaterLog
	TodaySteps      *entity.DailyStep
	Streaks         []entity.UserStreak
	TodayMeals      []entity.MealLog
	TodayWorkouts   []entity.WorkoutLog
	ActiveDays      int
	DegradedSources []string
	WaterTargetML   int
	StepTarget      int
	Now             time.Time
}

// BuildDashboardMetrics reduces one pass of reads into a snapshot.
// Current weight is the latest weigh-in, falling back to the profile weight.
func BuildDashboardMetrics(in MetricsInput) *entity.DashboardMetrics {
	m := &entity.DashboardMetrics{
		UserID:          in.UserID,
		WaterTargetML:   in.WaterTargetML,
		StepTarget:      in.StepTarget,
		DegradedSources: in.DegradedSources,
		ComputedAt:      in.Now,
	}
	if p := in.Profile; p != nil {
		m.Height = p.Height
		m.Weight = p.Weight
		m.TargetWeight = p.TargetWeight
		m.Goal = p.Goal
		m.ActivityLevel = p.ActivityLevel
	}

	switch {
	case len(in.RecentWeights) > 0:
		current := in.RecentWeights[0].WeightKG
		m.CurrentWeight = &current
		if len(in.RecentWeights) > 1 {
			previous := in.RecentWeights[1].WeightKG
			change := current - previous
			m.PreviousWeight = &previous
			m.WeightChange = &change
		}
	case m.Weight > 0:
		current := m.Weight
		m.CurrentWeight = &current
	}

	for _, w := range in.TodayWater {
		m.TodayWaterML += w.AmountML
	}
	m.WaterCompletionPercentage = CompletionPercentage(m.TodayWaterML, m.WaterTargetML)

	if in.TodaySteps != nil {
		m.TodaySteps = in.TodaySteps.StepCount
	}
	m.StepCompletionPercentage = CompletionPercentage(m.TodaySteps, m.StepTarget)

	for _, meal := range in.TodayMeals {
		m.TodayCalories += meal.Calories
		m.TodayProtein += meal.Protein
		m.TodayCarbohydrates += meal.Carbohydrates
		m.TodayFat += meal.Fat
	}
	m.MealsLoggedToday = len(in.TodayMeals)

	for _, w := range in.TodayWorkouts {
		m.TodayWorkoutMinutes += w.DurationMinutes
		m.TodayCaloriesBurned += w.CaloriesBurned
	}
	m.WorkoutsToday = len(in.TodayWorkouts)

	streaks := MapStreaks(in.Streaks)
	m.WorkoutStreak = streaks.Workout
	m.HydrationStreak = streaks.Hydration
	m.NutritionStreak = streaks.Nutrition
	m.OverallStreak = streaks.Overall
	m.LoginStreak = streaks.Login

	m.ActiveDaysThisWeek = in.ActiveDays

	if m.CurrentWeight != nil {
		m.BMI = CalculateBMI(m.Height, *m.CurrentWeight)
	}
	if m.BMI != nil {
		m.BMICategory = BMICategory(*m.BMI)
	}
	m.ProgressPercentage = ProgressPercentage(m.CurrentWeight, m.TargetWeight)
	return m
}

func parseISODate(value string) (time.Time, error) {
	return time.Parse(isoDateLayout, value)
}
