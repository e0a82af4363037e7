package deptsync

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-system/models"
)

type fakeEmployeeSource struct {
	counts   map[primitive.ObjectID]int64
	managers map[primitive.ObjectID][]models.User
	err      error
}

func (f *fakeEmployeeSource) CountByDepartment(ctx context.Context, deptID primitive.ObjectID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[deptID], nil
}

func (f *fakeEmployeeSource) FindManagersByDepartment(ctx context.Context, deptID primitive.ObjectID) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	managers := f.managers[deptID]
	sort.Slice(managers, func(i, j int) bool {
		if !managers[i].JoinDate.Equal(managers[j].JoinDate) {
			return managers[i].JoinDate.Before(managers[j].JoinDate)
		}
		return managers[i].ID.Hex() < managers[j].ID.Hex()
	})
	return managers, nil
}

type sinkUpdate struct {
	count   int64
	manager *primitive.ObjectID
}

type fakeDepartmentSink struct {
	mu      sync.Mutex
	updates map[primitive.ObjectID]sinkUpdate
	err     error
}

func newFakeSink() *fakeDepartmentSink {
	return &fakeDepartmentSink{updates: make(map[primitive.ObjectID]sinkUpdate)}
}

func (f *fakeDepartmentSink) SetEmployeeCountAndManager(ctx context.Context, id primitive.ObjectID, count int64, manager *primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[id] = sinkUpdate{count: count, manager: manager}
	return nil
}

func TestResyncCountsAndPicksManager(t *testing.T) {
	deptID := primitive.NewObjectID()
	managerID := primitive.NewObjectID()

	source := &fakeEmployeeSource{
		counts: map[primitive.ObjectID]int64{deptID: 3},
		managers: map[primitive.ObjectID][]models.User{
			deptID: {{ID: managerID, Position: models.PositionManager, JoinDate: time.Now()}},
		},
	}
	sink := newFakeSink()
	engine := NewEngine(source, sink)

	require.NoError(t, engine.Resync(context.Background(), deptID))

	update, ok := sink.updates[deptID]
	require.True(t, ok)
	assert.Equal(t, int64(3), update.count)
	require.NotNil(t, update.manager)
	assert.Equal(t, managerID, *update.manager)
}

func TestResyncClearsManagerWhenNoneLeft(t *testing.T) {
	deptID := primitive.NewObjectID()

	source := &fakeEmployeeSource{
		counts:   map[primitive.ObjectID]int64{deptID: 2},
		managers: map[primitive.ObjectID][]models.User{},
	}
	sink := newFakeSink()
	engine := NewEngine(source, sink)

	require.NoError(t, engine.Resync(context.Background(), deptID))

	update := sink.updates[deptID]
	assert.Equal(t, int64(2), update.count)
	assert.Nil(t, update.manager)
}

func TestResyncManagerTieBreakEarliestJoinDate(t *testing.T) {
	deptID := primitive.NewObjectID()
	older := models.User{ID: primitive.NewObjectID(), JoinDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := models.User{ID: primitive.NewObjectID(), JoinDate: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)}

	source := &fakeEmployeeSource{
		counts: map[primitive.ObjectID]int64{deptID: 5},
		managers: map[primitive.ObjectID][]models.User{
			deptID: {newer, older},
		},
	}
	sink := newFakeSink()
	engine := NewEngine(source, sink)

	require.NoError(t, engine.Resync(context.Background(), deptID))

	update := sink.updates[deptID]
	require.NotNil(t, update.manager)
	assert.Equal(t, older.ID, *update.manager)
}

func TestTriggerSyncsAllAffectedDepartments(t *testing.T) {
	oldDept := primitive.NewObjectID()
	newDept := primitive.NewObjectID()

	source := &fakeEmployeeSource{
		counts:   map[primitive.ObjectID]int64{oldDept: 1, newDept: 4},
		managers: map[primitive.ObjectID][]models.User{},
	}
	sink := newFakeSink()
	engine := NewEngine(source, sink)

	// A department reassignment touches both the old and new department;
	// duplicates and zero ids are ignored.
	engine.Trigger(oldDept, newDept, oldDept, primitive.NilObjectID)
	engine.Wait()

	require.Len(t, sink.updates, 2)
	assert.Equal(t, int64(1), sink.updates[oldDept].count)
	assert.Equal(t, int64(4), sink.updates[newDept].count)
}

func TestTriggerSwallowsSyncErrors(t *testing.T) {
	deptID := primitive.NewObjectID()

	source := &fakeEmployeeSource{err: errors.New("store unavailable")}
	engine := NewEngine(source, newFakeSink())

	// Must not panic or propagate; the employee write already succeeded.
	engine.Trigger(deptID)
	engine.Wait()
}
