package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type UserProfile struct {
	UserID        uuid.UUID `json:"uid"`
	Height        float64   `json:"height"`
	Weight        float64   `json:"weight"`
	TargetWeight  *float64  `json:"target_weight,omitempty"`
	Goal          *string   `json:"goal,omitempty"`
	ActivityLevel *string   `json:"activity_level,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WaterLog struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"uid"`
	AmountML int       `json:"amount_ml"`
	LoggedAt time.Time `json:"logged_at"`
}

// DailyStep is unique per (user, recorded date). RecordedDate is an ISO calendar date.
type DailyStep struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	StepCount    int       `json:"step_count"`
	RecordedDate string    `json:"recorded_date"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type StreakType string

const (
	StreakWorkout   StreakType = "workout"
	StreakHydration StreakType = "hydration"
	StreakNutrition StreakType = "nutrition"
	StreakOverall   StreakType = "overall"
	StreakLogin     StreakType = "login"
)

type UserStreak struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"uid"`
	StreakType       StreakType `json:"streak_type"`
	CurrentCount     int        `json:"current_count"`
	MaxCount         int        `json:"max_count"`
	LastActivityDate *string    `json:"last_activity_date,omitempty"`
}

type MealLog struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"uid"`
	MealDate      string    `json:"meal_date"`
	MealType      string    `json:"meal_type"`
	FoodName      string    `json:"food_name"`
	Quantity      float64   `json:"quantity"`
	Calories      float64   `json:"calories"`
	Protein       float64   `json:"protein"`
	Carbohydrates float64   `json:"carbohydrates"`
	Fat           float64   `json:"fat"`
	LoggedAt      time.Time `json:"logged_at"`
}

type WorkoutLog struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"uid"`
	WorkoutName     string    `json:"workout_name"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`
	Notes           string    `json:"notes,omitempty"`
	LoggedAt        time.Time `json:"logged_at"`
}

type WeightLog struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"uid"`
	WeightKG float64   `json:"weight_kg"`
	LoggedAt time.Time `json:"logged_at"`
}

// DashboardMetrics is a computed snapshot, never persisted.
type DashboardMetrics struct {
	UserID        uuid.UUID `json:"uid"`
	Height        float64   `json:"height"`
	Weight        float64   `json:"weight"`
	TargetWeight  *float64  `json:"target_weight,omitempty"`
	Goal          *string   `json:"goal,omitempty"`
	ActivityLevel *string   `json:"activity_level,omitempty"`

	CurrentWeight  *float64 `json:"current_weight,omitempty"`
	PreviousWeight *float64 `json:"previous_weight,omitempty"`
	WeightChange   *float64 `json:"weight_change,omitempty"`

	TodayWaterML              int `json:"today_water_ml"`
	WaterTargetML             int `json:"water_target_ml"`
	WaterCompletionPercentage int `json:"water_completion_percentage"`

	TodaySteps               int `json:"today_steps"`
	StepTarget               int `json:"step_target"`
	StepCompletionPercentage int `json:"step_completion_percentage"`

	TodayCalories      float64 `json:"today_calories"`
	TodayProtein       float64 `json:"today_protein"`
	TodayCarbohydrates float64 `json:"today_carbohydrates"`
	TodayFat           float64 `json:"today_fat"`
	MealsLoggedToday   int     `json:"meals_logged_today"`

	WorkoutsToday       int     `json:"workouts_today"`
	TodayWorkoutMinutes int     `json:"today_workout_minutes"`
	TodayCaloriesBurned float64 `json:"today_calories_burned"`

	WorkoutStreak   int `json:"workout_streak"`
	HydrationStreak int `json:"hydration_streak"`
	NutritionStreak int `json:"nutrition_streak"`
	OverallStreak   int `json:"overall_streak"`
	LoginStreak     int `json:"login_streak"`

	ActiveDaysThisWeek int `json:"active_days_this_week"`

	BMI                *float64 `json:"bmi,omitempty"`
	BMICategory        string   `json:"bmi_category,omitempty"`
	ProgressPercentage int      `json:"progress_percentage"`

	DegradedSources []string  `json:"degraded_sources,omitempty"`
	ComputedAt      time.Time `json:"computed_at"`
}

type WeeklyStepData struct {
	Date                 string `json:"date"`
	StepCount            int    `json:"step_count"`
	CompletionPercentage int    `json:"completion_percentage"`
}
