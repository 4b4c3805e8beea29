package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/limbo/fitdash/pkg/entity"
)

type DailyStepsRepository struct {
	conn PgConnection
}

func NewDailyStepsRepoWithConn(conn PgConnection) *DailyStepsRepository {
	mustPing(conn, "dailyStepsRepo")
	return &DailyStepsRepository{
		conn: conn,
	}
}

func (sr *DailyStepsRepository) Upsert(ctx context.Context, step *entity.DailyStep) error {
	_, err := sr.conn.Exec(ctx, `INSERT INTO daily_steps (user_id, step_count, recorded_date) VALUES ($1, $2, $3::date)
		ON CONFLICT (user_id, recorded_date) DO UPDATE SET step_count = EXCLUDED.step_count, updated_at = NOW();`,
		step.UserID,
		step.StepCount,
		step.RecordedDate,
	)
	if err != nil {
		return insertError("upserting daily steps", err)
	}
	return nil
}

func (sr *DailyStepsRepository) GetByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyStep, error) {
	step := entity.DailyStep{}
	row := sr.conn.QueryRow(ctx, `SELECT id, user_id, step_count, recorded_date::text, updated_at FROM daily_steps
		WHERE user_id = $1 AND recorded_date = $2::date LIMIT 1;`, uid, date)
	if err := row.Scan(&step.ID, &step.UserID, &step.StepCount, &step.RecordedDate, &step.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting daily steps by date error: " + err.Error())
	}
	return &step, nil
}

func (sr *DailyStepsRepository) ListByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.DailyStep, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, user_id, step_count, recorded_date::text, updated_at FROM daily_steps
		WHERE user_id = $1 AND recorded_date >= $2::date AND recorded_date <= $3::date ORDER BY recorded_date;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting daily steps for period error: " + err.Error())
	}
	defer rows.Close()
	steps := make([]entity.DailyStep, 0, 7)
	for rows.Next() {
		s := entity.DailyStep{}
		if err = rows.Scan(&s.ID, &s.UserID, &s.StepCount, &s.RecordedDate, &s.UpdatedAt); err != nil {
			return nil, errors.New("daily steps row parsing error: " + err.Error())
		}
		steps = append(steps, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected daily steps rows error: " + err.Error())
	}
	return steps, nil
}
