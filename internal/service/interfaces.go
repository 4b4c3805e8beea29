package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/fitdash/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type ProfileRequest struct {
	Height        float64  `json:"height" validate:"required,gte=50,lte=250"`
	Weight        float64  `json:"weight" validate:"required,gte=10,lte=400"`
	TargetWeight  *float64 `json:"target_weight" validate:"omitempty,gte=10,lte=400"`
	Goal          *string  `json:"goal" validate:"omitempty,oneof=lose_weight maintain gain_muscle improve_health"`
	ActivityLevel *string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
}

// LogMealRequest leaves MealType and Quantity to storage defaults when empty.
// Empty MealDate means today.
type LogMealRequest struct {
	MealDate      string   `json:"meal_date" validate:"omitempty,iso_date"`
	MealType      string   `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	FoodName      string   `json:"food_name" validate:"required,max=200"`
	Quantity      *float64 `json:"quantity" validate:"omitempty,gt=0"`
	Calories      float64  `json:"calories" validate:"gte=0"`
	Protein       float64  `json:"protein" validate:"gte=0"`
	Carbohydrates float64  `json:"carbohydrates" validate:"gte=0"`
	Fat           float64  `json:"fat" validate:"gte=0"`
}

type LogWorkoutRequest struct {
	WorkoutName     string  `json:"workout_name" validate:"required,max=200"`
	DurationMinutes int     `json:"duration_minutes" validate:"gt=0,lte=1440"`
	CaloriesBurned  float64 `json:"calories_burned" validate:"gte=0"`
	Notes           string  `json:"notes" validate:"max=1000"`
}

type logStepsRequest struct {
	StepCount int    `validate:"gte=0,lte=200000"`
	Date      string `validate:"required,iso_date"`
}

// ActivityFlags tell which kinds of activity were recorded outside of the dashboard.
type ActivityFlags struct {
	Water   bool `json:"water"`
	Steps   bool `json:"steps"`
	Meal    bool `json:"meal"`
	Workout bool `json:"workout"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ProfileServiceI interface {
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error)
	// Validates and stores the profile. Returns stored profile
	Save(ctx context.Context, uid uuid.UUID, req *ProfileRequest) (*entity.UserProfile, error)
}

// DashboardsServiceI serves dashboards of many users, each one keyed by user id.
type DashboardsServiceI interface {
	// Runs a fresh aggregation and returns resulting state
	Refresh(ctx context.Context, uid uuid.UUID) (DashboardState, error)
	// Returns last computed state without touching storage
	Snapshot(uid uuid.UUID) DashboardState
	LogWaterIntake(ctx context.Context, uid uuid.UUID, amountML int) (DashboardState, error)
	LogDailySteps(ctx context.Context, uid uuid.UUID, stepCount int, date string) (DashboardState, error)
	LogMeal(ctx context.Context, uid uuid.UUID, req LogMealRequest) (DashboardState, error)
	LogWorkout(ctx context.Context, uid uuid.UUID, req LogWorkoutRequest) (DashboardState, error)
	LogWeight(ctx context.Context, uid uuid.UUID, weightKG float64) (DashboardState, error)
	UpdateActivitySummary(ctx context.Context, uid uuid.UUID, flags ActivityFlags) (DashboardState, error)
}
