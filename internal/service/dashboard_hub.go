package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/limbo/fitdash/internal/session"
)

const EventDashboardRefreshed = "dashboard.refreshed"

// Publisher pushes an event to every live connection of the user.
type Publisher interface {
	Broadcast(uid uuid.UUID, event string, payload any)
}

// DashboardHub keeps one Dashboard per user, each bound to a static session of that user.
type DashboardHub struct {
	src       DashboardSources
	opts      []DashboardOption
	publisher Publisher

	mu         sync.Mutex
	dashboards map[uuid.UUID]*Dashboard
}

// NewDashboardHub accepts nil publisher, refreshes are not pushed anywhere then.
func NewDashboardHub(src DashboardSources, publisher Publisher, opts ...DashboardOption) *DashboardHub {
	return &DashboardHub{
		src:        src,
		opts:       opts,
		publisher:  publisher,
		dashboards: make(map[uuid.UUID]*Dashboard),
	}
}

func (h *DashboardHub) dashboard(uid uuid.UUID) *Dashboard {
	h.mu.Lock()
	defer h.mu.Unlock()
	if d, ok := h.dashboards[uid]; ok {
		return d
	}
	d := NewDashboard(session.Static(uid), h.src, h.opts...)
	if h.publisher != nil {
		d.OnRefresh(func(st DashboardState) {
			h.publisher.Broadcast(uid, EventDashboardRefreshed, st)
		})
	}
	h.dashboards[uid] = d
	return d
}

func (h *DashboardHub) Refresh(ctx context.Context, uid uuid.UUID) (DashboardState, error) {
	d := h.dashboard(uid)
	err := d.FetchDashboardMetrics(ctx)
	return d.State(), err
}

func (h *DashboardHub) Snapshot(uid uuid.UUID) DashboardState {
	return h.dashboard(uid).State()
}

func (h *DashboardHub) LogWaterIntake(ctx context.Context, uid uuid.UUID, amountML int) (DashboardState, error) {
	d := h.dashboard(uid)
	err := d.LogWaterIntake(ctx, amountML)
	return d.State(), err
}

func (h *DashboardHub) LogDailySteps(ctx context.Context, uid uuid.UUID, stepCount int, date string) (DashboardState, error) {
	d := h.dashboard(uid)
	err := d.LogDailySteps(ctx, stepCount, date)
	return d.State(), err
}

func (h *DashboardHub) LogMeal(ctx context.Context, uid uuid.UUID, req LogMealRequest) (DashboardState, error) {
	d := h.dashboard(uid)
	err := d.LogMeal(ctx, req)
	return d.State(), err
}

func (h *DashboardHub) LogWorkout(ctx context.Context, uid uuid.UUID, req LogWorkoutRequest) (DashboardState, error) {
	d := h.dashboard(uid)
	err := d.LogWorkout(ctx, req)
	return d.State(), err
}

func (h *DashboardHub) LogWeight(ctx context.Context, uid uuid.UUID, weightKG float64) (DashboardState, error) {
	d := h.dashboard(uid)
	err := d.LogWeight(ctx, weightKG)
	return d.State(), err
}

func (h *DashboardHub) UpdateActivitySummary(ctx context.Context, uid uuid.UUID, flags ActivityFlags) (DashboardState, error) {
	d := h.dashboard(uid)
	err := d.UpdateActivitySummary(ctx, flags)
	return d.State(), err
}
