package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/secmon-lab/vatika/pkg/repository/memory"
	"github.com/secmon-lab/vatika/pkg/service/worker"
	"github.com/secmon-lab/vatika/pkg/usecase"
)

type mockRotator struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *mockRotator) RotateDailyPlant(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	return true, nil
}

func (m *mockRotator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestDailyRotationWorker_RotatesImmediately(t *testing.T) {
	rotator := &mockRotator{}
	w := worker.NewDailyRotationWorker(rotator, 10*time.Minute)

	gt.NoError(t, w.Start(context.Background())).Required()
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	gt.Value(t, rotator.Calls()).Equal(1)
}

func TestDailyRotationWorker_PeriodicRotation(t *testing.T) {
	rotator := &mockRotator{}
	w := worker.NewDailyRotationWorker(rotator, 50*time.Millisecond)

	gt.NoError(t, w.Start(context.Background())).Required()
	time.Sleep(180 * time.Millisecond)
	w.Stop()

	gt.Bool(t, rotator.Calls() >= 3).True()
}

func TestDailyRotationWorker_KeepsRunningOnError(t *testing.T) {
	rotator := &mockRotator{err: errors.New("save failed")}
	w := worker.NewDailyRotationWorker(rotator, 50*time.Millisecond)

	gt.NoError(t, w.Start(context.Background())).Required()
	time.Sleep(130 * time.Millisecond)
	w.Stop()

	gt.Bool(t, rotator.Calls() >= 2).True()
}

func TestDailyRotationWorker_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rotator := &mockRotator{}
	w := worker.NewDailyRotationWorker(rotator, 10*time.Minute)

	gt.NoError(t, w.Start(ctx)).Required()
	cancel()

	stopStart := time.Now()
	w.Stop()
	gt.Bool(t, time.Since(stopStart) < time.Second).True()
}

func TestDailyRotationWorker_WithPlantStore(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	now := time.Date(2026, 10, 17, 23, 0, 0, 0, time.Local)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	catalog := &staticCatalog{plants: []*model.Plant{
		{ID: "a", Name: "A", ScientificName: "Alpha"},
		{ID: "b", Name: "B", ScientificName: "Beta"},
	}}
	store := usecase.NewPlantStore(catalog, memory.New().PlantState(),
		usecase.WithClock(clock),
		usecase.WithRandom(func(int) int { return 0 }),
	)
	gt.NoError(t, store.Initialize(ctx)).Required()

	w := worker.NewDailyRotationWorker(store, 20*time.Millisecond)
	gt.NoError(t, w.Start(ctx)).Required()
	defer w.Stop()

	time.Sleep(60 * time.Millisecond)
	gt.Value(t, store.DailyPlant().ID).Equal(model.PlantID("a"))

	mu.Lock()
	now = now.Add(2 * time.Hour)
	mu.Unlock()

	time.Sleep(100 * time.Millisecond)
	gt.Value(t, store.DailyPlant().ID).Equal(model.PlantID("b"))
	gt.Value(t, store.LastRotated()).Equal("2026-10-18")
}

func TestNewDailyRotationWorker_DefaultInterval(t *testing.T) {
	w := worker.NewDailyRotationWorker(&mockRotator{}, 0)
	gt.Value(t, worker.IntervalOf(w)).Equal(worker.DefaultRotationInterval)
}

type staticCatalog struct {
	plants []*model.Plant
}

func (c *staticCatalog) FetchPlants(ctx context.Context) ([]*model.Plant, error) {
	return c.plants, nil
}
