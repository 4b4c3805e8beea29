package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/limbo/fitdash/pkg/entity"
)

// StreaksRepository only reads. Streak rows are maintained outside of this service.
type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	mustPing(conn, "streaksRepo")
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) ListByUserID(ctx context.Context, uid uuid.UUID) ([]entity.UserStreak, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, user_id, streak_type, current_count, max_count, last_activity_date::text
		FROM user_streaks WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("getting streaks by uid error: " + err.Error())
	}
	defer rows.Close()
	streaks := make([]entity.UserStreak, 0, 5)
	for rows.Next() {
		s := entity.UserStreak{}
		var streakType string
		if err = rows.Scan(&s.ID, &s.UserID, &streakType, &s.CurrentCount, &s.MaxCount, &s.LastActivityDate); err != nil {
			return nil, errors.New("streak row parsing error: " + err.Error())
		}
		s.StreakType = entity.StreakType(streakType)
		streaks = append(streaks, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected streak rows error: " + err.Error())
	}
	return streaks, nil
}
