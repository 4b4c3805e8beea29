package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/fitdash/pkg/entity"
)

type WaterLogsRepository struct {
	conn PgConnection
}

func NewWaterLogsRepoWithConn(conn PgConnection) *WaterLogsRepository {
	mustPing(conn, "waterLogsRepo")
	return &WaterLogsRepository{
		conn: conn,
	}
}

func (wr *WaterLogsRepository) Create(ctx context.Context, log *entity.WaterLog) (uuid.UUID, error) {
	var id uuid.UUID
	row := wr.conn.QueryRow(ctx, `INSERT INTO water_logs (user_id, amount_ml) VALUES ($1, $2) RETURNING id;`,
		log.UserID,
		log.AmountML,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, insertError("creating water log", err)
	}
	return id, nil
}

func (wr *WaterLogsRepository) ListByRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WaterLog, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, amount_ml, logged_at FROM water_logs
		WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3 ORDER BY logged_at;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting water logs for period error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]entity.WaterLog, 0)
	for rows.Next() {
		l := entity.WaterLog{}
		if err = rows.Scan(&l.ID, &l.UserID, &l.AmountML, &l.LoggedAt); err != nil {
			return nil, errors.New("water log row parsing error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected water log rows error: " + err.Error())
	}
	return logs, nil
}
