package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/fitdash/internal/error_values"
	"github.com/limbo/fitdash/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	mustPing(conn, "profilesRepo")
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error) {
	profile := entity.UserProfile{UserID: uid}
	row := pr.conn.QueryRow(ctx, `SELECT height, weight, target_weight, goal, activity_level, updated_at
		FROM user_profiles WHERE user_id = $1 LIMIT 1;`, uid)
	err := row.Scan(&profile.Height, &profile.Weight, &profile.TargetWeight, &profile.Goal, &profile.ActivityLevel, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile by uid error: " + err.Error())
	}
	return &profile, nil
}

func (pr *ProfilesRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	_, err := pr.conn.Exec(ctx, `INSERT INTO user_profiles (user_id, height, weight, target_weight, goal, activity_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET height = EXCLUDED.height, weight = EXCLUDED.weight,
		target_weight = EXCLUDED.target_weight, goal = EXCLUDED.goal,
		activity_level = EXCLUDED.activity_level, updated_at = NOW();`,
		profile.UserID,
		profile.Height,
		profile.Weight,
		profile.TargetWeight,
		profile.Goal,
		profile.ActivityLevel,
	)
	if err != nil {
		return insertError("upserting profile", err)
	}
	return nil
}
