package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/limbo/fitdash/pkg/entity"
)

type WeightLogsRepository struct {
	conn PgConnection
}

func NewWeightLogsRepoWithConn(conn PgConnection) *WeightLogsRepository {
	mustPing(conn, "weightLogsRepo")
	return &WeightLogsRepository{
		conn: conn,
	}
}

func (wr *WeightLogsRepository) Create(ctx context.Context, log *entity.WeightLog) (uuid.UUID, error) {
	var id uuid.UUID
	row := wr.conn.QueryRow(ctx, `INSERT INTO weight_logs (user_id, weight_kg) VALUES ($1, $2) RETURNING id;`,
		log.UserID,
		log.WeightKG,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, insertError("creating weight log", err)
	}
	return id, nil
}

func (wr *WeightLogsRepository) ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]entity.WeightLog, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, weight_kg, logged_at FROM weight_logs
		WHERE user_id = $1 ORDER BY logged_at DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("getting recent weight logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]entity.WeightLog, 0, limit)
	for rows.Next() {
		l := entity.WeightLog{}
		if err = rows.Scan(&l.ID, &l.UserID, &l.WeightKG, &l.LoggedAt); err != nil {
			return nil, errors.New("weight log row parsing error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected weight log rows error: " + err.Error())
	}
	return logs, nil
}
