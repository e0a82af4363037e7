// Package deptsync keeps the denormalized Department fields
// (employee_count and manager) consistent with the Employee collection.
// It runs as a best-effort post-write hook: a failed sync never rolls back
// the employee write that triggered it, so the aggregate is eventually
// consistent rather than transactional.
package deptsync

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-system/models"
)

type EmployeeSource interface {
	CountByDepartment(ctx context.Context, deptID primitive.ObjectID) (int64, error)
	// FindManagersByDepartment returns Manager-position employees ordered
	// by join date then id.
	FindManagersByDepartment(ctx context.Context, deptID primitive.ObjectID) ([]models.User, error)
}

type DepartmentSink interface {
	SetEmployeeCountAndManager(ctx context.Context, id primitive.ObjectID, count int64, manager *primitive.ObjectID) error
}

type Engine struct {
	employees   EmployeeSource
	departments DepartmentSink
	timeout     time.Duration
	wg          sync.WaitGroup
}

func NewEngine(employees EmployeeSource, departments DepartmentSink) *Engine {
	return &Engine{
		employees:   employees,
		departments: departments,
		timeout:     10 * time.Second,
	}
}

// Resync recomputes both derived fields for one department and persists
// them in a single update. Manager tie-break: earliest join date wins,
// then lowest id; no Manager-position employee clears the reference.
func (e *Engine) Resync(ctx context.Context, deptID primitive.ObjectID) error {
	count, err := e.employees.CountByDepartment(ctx, deptID)
	if err != nil {
		return err
	}

	managers, err := e.employees.FindManagersByDepartment(ctx, deptID)
	if err != nil {
		return err
	}

	var manager *primitive.ObjectID
	if len(managers) > 0 {
		manager = &managers[0].ID
	}

	return e.departments.SetEmployeeCountAndManager(ctx, deptID, count, manager)
}

// Trigger fires a resync for each affected department without blocking the
// caller. Duplicate and zero ids are skipped; errors are logged only.
func (e *Engine) Trigger(deptIDs ...primitive.ObjectID) {
	seen := make(map[primitive.ObjectID]bool, len(deptIDs))
	for _, deptID := range deptIDs {
		if deptID.IsZero() || seen[deptID] {
			continue
		}
		seen[deptID] = true

		e.wg.Add(1)
		go func(id primitive.ObjectID) {
			defer e.wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
			defer cancel()

			if err := e.Resync(ctx, id); err != nil {
				log.Printf("department sync failed for %s: %v", id.Hex(), err)
			}
		}(deptID)
	}
}

// Wait blocks until all triggered syncs have finished. Used on shutdown
// and in tests.
func (e *Engine) Wait() {
	e.wg.Wait()
}
