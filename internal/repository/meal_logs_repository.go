package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/limbo/fitdash/pkg/entity"
)

type MealLogsRepository struct {
	conn PgConnection
}

func NewMealLogsRepoWithConn(conn PgConnection) *MealLogsRepository {
	mustPing(conn, "mealLogsRepo")
	return &MealLogsRepository{
		conn: conn,
	}
}

func (mr *MealLogsRepository) Create(ctx context.Context, meal *entity.MealLog, quantity *float64) (uuid.UUID, error) {
	var id uuid.UUID
	row := mr.conn.QueryRow(ctx, `INSERT INTO meal_logs (user_id, meal_date, meal_type, food_name, quantity, calories, protein, carbohydrates, fat)
		VALUES ($1, $2::date, COALESCE(NULLIF($3::text, ''), 'snack'), $4, COALESCE($5::double precision, 1), $6, $7, $8, $9) RETURNING id;`,
		meal.UserID,
		meal.MealDate,
		meal.MealType,
		meal.FoodName,
		quantity,
		meal.Calories,
		meal.Protein,
		meal.Carbohydrates,
		meal.Fat,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, insertError("creating meal log", err)
	}
	return id, nil
}

func (mr *MealLogsRepository) ListByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.MealLog, error) {
	rows, err := mr.conn.Query(ctx, `SELECT id, user_id, meal_date::text, meal_type, food_name, quantity, calories, protein, carbohydrates, fat, logged_at
		FROM meal_logs WHERE user_id = $1 AND meal_date >= $2::date AND meal_date <= $3::date ORDER BY logged_at;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting meal logs for period error: " + err.Error())
	}
	defer rows.Close()
	meals := make([]entity.MealLog, 0)
	for rows.Next() {
		m := entity.MealLog{}
		err = rows.Scan(&m.ID, &m.UserID, &m.MealDate, &m.MealType, &m.FoodName, &m.Quantity,
			&m.Calories, &m.Protein, &m.Carbohydrates, &m.Fat, &m.LoggedAt)
		if err != nil {
			return nil, errors.New("meal log row parsing error: " + err.Error())
		}
		meals = append(meals, m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected meal log rows error: " + err.Error())
	}
	return meals, nil
}
