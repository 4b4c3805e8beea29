package service

import (
	"context"
	"errors"
	"log/slog"

	errorvalues "github.com/limbo/fitdash/internal/error_values"
)

// Names of tolerant sub-fetches. They show up in logs and in DashboardMetrics.DegradedSources.
const (
	SourceWater        = "water"
	SourceSteps        = "steps"
	SourceStreaks      = "streaks"
	SourceMeals        = "meals"
	SourceWorkouts     = "workouts"
	SourceWeekWater    = "week_activity.water"
	SourceWeekSteps    = "week_activity.steps"
	SourceWeekWorkouts = "week_activity.workouts"
	SourceWeekMeals    = "week_activity.meals"
)

// SourceResult is the outcome of one sub-fetch. Err is never acted on at the fetch site,
// only by resolve.
type SourceResult[T any] struct {
	Source string
	Value  T
	Err    error
}

func fetchSource[T any](ctx context.Context, source string, fetch func(context.Context) (T, error)) SourceResult[T] {
	value, err := fetch(ctx)
	return SourceResult[T]{
		Source: source,
		Value:  value,
		Err:    err,
	}
}

// degradation collects failed sources of one aggregation pass.
type degradation struct {
	logger  *slog.Logger
	sources []string
}

// resolve applies the default-on-error policy: a failed source contributes its zero value.
func resolve[T any](d *degradation, result SourceResult[T]) T {
	if result.Err == nil {
		return result.Value
	}
	err := errors.Join(errorvalues.ErrSourceDegraded, result.Err)
	d.logger.Warn("dashboard source degraded",
		slog.String("source", result.Source),
		slog.String("error", err.Error()),
	)
	d.sources = append(d.sources, result.Source)
	var zero T
	return zero
}

func datesOf[T any](rows []T, date func(T) string) []string {
	dates := make([]string, 0, len(rows))
	for _, r := range rows {
		dates = append(dates, date(r))
	}
	return dates
}
