package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/fitdash/pkg/entity"
)

type WorkoutLogsRepository struct {
	conn PgConnection
}

func NewWorkoutLogsRepoWithConn(conn PgConnection) *WorkoutLogsRepository {
	mustPing(conn, "workoutLogsRepo")
	return &WorkoutLogsRepository{
		conn: conn,
	}
}

func (wr *WorkoutLogsRepository) Create(ctx context.Context, workout *entity.WorkoutLog) (uuid.UUID, error) {
	var id uuid.UUID
	row := wr.conn.QueryRow(ctx, `INSERT INTO workout_logs (user_id, workout_name, duration_minutes, calories_burned, notes)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		workout.UserID,
		workout.WorkoutName,
		workout.DurationMinutes,
		workout.CaloriesBurned,
		workout.Notes,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, insertError("creating workout log", err)
	}
	return id, nil
}

func (wr *WorkoutLogsRepository) ListByRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutLog, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, workout_name, duration_minutes, calories_burned, notes, logged_at
		FROM workout_logs WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3 ORDER BY logged_at;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting workout logs for period error: " + err.Error())
	}
	defer rows.Close()
	workouts := make([]entity.WorkoutLog, 0)
	for rows.Next() {
		w := entity.WorkoutLog{}
		err = rows.Scan(&w.ID, &w.UserID, &w.WorkoutName, &w.DurationMinutes, &w.CaloriesBurned, &w.Notes, &w.LoggedAt)
		if err != nil {
			return nil, errors.New("workout log row parsing error: " + err.Error())
		}
		workouts = append(workouts, w)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout log rows error: " + err.Error())
	}
	return workouts, nil
}
