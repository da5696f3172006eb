package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/harssh120/AlphaFit/internal/api"
	"github.com/harssh120/AlphaFit/internal/model"
	"github.com/harssh120/AlphaFit/internal/session"
)

// Orchestrator keeps the five client-side caches of the current day in sync:
// aggregate stats, the two read-only catalogs, and the two logs. Caches are
// replaced whole on every fetch, never patched, so displayed totals always
// come from the server's aggregation.
type Orchestrator struct {
	client  *api.Client
	session *session.Manager
	logger  *slog.Logger

	mu        sync.Mutex
	epoch     uuid.UUID
	stats     model.DashboardStats
	foods     []model.FoodItem
	exercises []model.Exercise
	meals     []model.MealLogEntry
	workouts  []model.WorkoutLogEntry
}

func NewOrchestrator(client *api.Client, sess *session.Manager, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{client: client, session: sess, logger: logger}
}

// Load issues the five initial fetches concurrently. Each fetch is
// failure-isolated: an error is logged and leaves that resource at its
// last-known value without blocking the other four.
func (o *Orchestrator) Load(ctx context.Context) error {
	cred, ok := o.session.Credential()
	if !ok {
		return fmt.Errorf("not authenticated")
	}
	epoch := o.session.Epoch()

	var wg sync.WaitGroup
	run := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				o.logger.Warn("dashboard fetch failed",
					slog.String("resource", name),
					slog.String("error", err.Error()))
			}
		}()
	}

	run("stats", func() error { return o.refreshStats(ctx, cred, epoch) })
	run("food_catalog", func() error {
		items, err := o.client.FoodItems(ctx, cred)
		if err != nil {
			return err
		}
		o.apply(epoch, func() { o.foods = items })
		return nil
	})
	run("exercise_catalog", func() error {
		items, err := o.client.Exercises(ctx, cred)
		if err != nil {
			return err
		}
		o.apply(epoch, func() { o.exercises = items })
		return nil
	})
	run("meal_log", func() error { return o.refreshMeals(ctx, cred, epoch) })
	run("workout_log", func() error { return o.refreshWorkouts(ctx, cred, epoch) })

	wg.Wait()
	return nil
}

// LogMeal submits the mutation and, on success, jointly refreshes the meal
// log and the aggregate stats. The operation is not complete until both
// refreshes resolve; a failed mutation changes nothing.
func (o *Orchestrator) LogMeal(ctx context.Context, draft api.MealDraft) (model.MealLogEntry, error) {
	cred, ok := o.session.Credential()
	if !ok {
		return model.MealLogEntry{}, fmt.Errorf("not authenticated")
	}
	epoch := o.session.Epoch()

	entry, err := o.client.LogMeal(ctx, cred, draft)
	if err != nil {
		return model.MealLogEntry{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return o.refreshMeals(gctx, cred, epoch) })
	g.Go(func() error { return o.refreshStats(gctx, cred, epoch) })
	if err := g.Wait(); err != nil {
		return entry, fmt.Errorf("refresh after meal log: %w", err)
	}
	return entry, nil
}

// LogWorkout is the workout counterpart of LogMeal, refreshing the workout
// log and stats jointly.
func (o *Orchestrator) LogWorkout(ctx context.Context, draft api.WorkoutDraft) (model.WorkoutLogEntry, error) {
	cred, ok := o.session.Credential()
	if !ok {
		return model.WorkoutLogEntry{}, fmt.Errorf("not authenticated")
	}
	epoch := o.session.Epoch()

	entry, err := o.client.LogWorkout(ctx, cred, draft)
	if err != nil {
		return model.WorkoutLogEntry{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return o.refreshWorkouts(gctx, cred, epoch) })
	g.Go(func() error { return o.refreshStats(gctx, cred, epoch) })
	if err := g.Wait(); err != nil {
		return entry, fmt.Errorf("refresh after workout log: %w", err)
	}
	return entry, nil
}

func (o *Orchestrator) refreshStats(ctx context.Context, cred api.Credential, epoch uuid.UUID) error {
	stats, err := o.client.DashboardStats(ctx, cred)
	if err != nil {
		return err
	}
	o.apply(epoch, func() { o.stats = stats })
	return nil
}

func (o *Orchestrator) refreshMeals(ctx context.Context, cred api.Credential, epoch uuid.UUID) error {
	entries, err := o.client.MealLog(ctx, cred)
	if err != nil {
		return err
	}
	o.apply(epoch, func() { o.meals = entries })
	return nil
}

func (o *Orchestrator) refreshWorkouts(ctx context.Context, cred api.Credential, epoch uuid.UUID) error {
	entries, err := o.client.WorkoutLog(ctx, cred)
	if err != nil {
		return err
	}
	o.apply(epoch, func() { o.workouts = entries })
	return nil
}

// apply commits a fetched result only if the session that requested it is
// still current; results arriving after logout are dropped so a stale
// response cannot resurrect a cleared session. The first result of a new
// session replaces everything the previous one cached.
func (o *Orchestrator) apply(epoch uuid.UUID, commit func()) {
	if !o.session.Matches(epoch) {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if epoch != o.epoch {
		o.stats = model.DashboardStats{}
		o.foods = nil
		o.exercises = nil
		o.meals = nil
		o.workouts = nil
		o.epoch = epoch
	}
	commit()
}

// currentLocked reports whether the caches belong to the live session.
// Response bodies never outlive a teardown: once the session that filled the
// caches is gone, accessors read empty until a new session loads.
func (o *Orchestrator) currentLocked() bool {
	return o.session.Matches(o.epoch)
}

func (o *Orchestrator) Stats() model.DashboardStats {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.currentLocked() {
		return model.DashboardStats{}
	}
	return o.stats
}

func (o *Orchestrator) Foods() []model.FoodItem {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.currentLocked() {
		return nil
	}
	out := make([]model.FoodItem, len(o.foods))
	copy(out, o.foods)
	return out
}

func (o *Orchestrator) Exercises() []model.Exercise {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.currentLocked() {
		return nil
	}
	out := make([]model.Exercise, len(o.exercises))
	copy(out, o.exercises)
	return out
}

func (o *Orchestrator) Meals() []model.MealLogEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.currentLocked() {
		return nil
	}
	out := make([]model.MealLogEntry, len(o.meals))
	copy(out, o.meals)
	return out
}

func (o *Orchestrator) Workouts() []model.WorkoutLogEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.currentLocked() {
		return nil
	}
	out := make([]model.WorkoutLogEntry, len(o.workouts))
	copy(out, o.workouts)
	return out
}
