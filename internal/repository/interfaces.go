package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fitdash/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ProfilesRepositoryI interface {
	// Returns profile of user with uid. ErrProfileNotFound if user has no profile yet
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error)
	// Creates profile or overwrites the existing one
	Upsert(ctx context.Context, profile *entity.UserProfile) error
}

type WaterLogsRepositoryI interface {
	Create(ctx context.Context, log *entity.WaterLog) (uuid.UUID, error)
	// Lists water logs with from <= logged_at < to
	ListByRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WaterLog, error)
}

type DailyStepsRepositoryI interface {
	// Inserts step count for the date or overwrites step_count and updated_at of the existing row
	Upsert(ctx context.Context, step *entity.DailyStep) error
	// Returns nil if there is no row for the date
	GetByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyStep, error)
	// Lists rows with from <= recorded_date <= to, ordered by date
	ListByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.DailyStep, error)
}

type StreaksRepositoryI interface {
	ListByUserID(ctx context.Context, uid uuid.UUID) ([]entity.UserStreak, error)
}

type MealLogsRepositoryI interface {
	// Empty MealType and nil quantity are filled with column defaults
	Create(ctx context.Context, meal *entity.MealLog, quantity *float64) (uuid.UUID, error)
	// Lists meals with from <= meal_date <= to
	ListByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.MealLog, error)
}

type WorkoutLogsRepositoryI interface {
	Create(ctx context.Context, workout *entity.WorkoutLog) (uuid.UUID, error)
	// Lists workouts with from <= logged_at < to
	ListByRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutLog, error)
}

type WeightLogsRepositoryI interface {
	Create(ctx context.Context, log *entity.WeightLog) (uuid.UUID, error)
	// Lists latest weigh-ins, most recent first
	ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]entity.WeightLog, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
