package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-management-system/models"
)

func TestGatePolicies(t *testing.T) {
	gate, err := NewGate()
	require.NoError(t, err)

	tests := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{models.RoleEmployee, ResourceAttendance, ActionCreate, true},
		{models.RoleEmployee, ResourceAttendance, ActionRead, true},
		{models.RoleEmployee, ResourceLeaves, ActionCreate, true},
		{models.RoleEmployee, ResourceSalaries, ActionRead, true},
		{models.RoleEmployee, ResourceDepartments, ActionRead, true},

		{models.RoleEmployee, ResourceEmployees, ActionCreate, false},
		{models.RoleEmployee, ResourceEmployees, ActionList, false},
		{models.RoleEmployee, ResourceEmployees, ActionDelete, false},
		{models.RoleEmployee, ResourceDepartments, ActionCreate, false},
		{models.RoleEmployee, ResourceLeaves, ActionDecide, false},
		{models.RoleEmployee, ResourceSalaries, ActionCreate, false},
		{models.RoleEmployee, ResourceSalaries, ActionUpdate, false},
		{models.RoleEmployee, ResourceAttendance, ActionManage, false},

		{models.RoleAdmin, ResourceEmployees, ActionCreate, true},
		{models.RoleAdmin, ResourceEmployees, ActionStats, true},
		{models.RoleAdmin, ResourceEmployees, ActionList, true},
		{models.RoleAdmin, ResourceDepartments, ActionDelete, true},
		{models.RoleAdmin, ResourceLeaves, ActionDecide, true},
		{models.RoleAdmin, ResourceSalaries, ActionUpdate, true},
		{models.RoleAdmin, ResourceAttendance, ActionManage, true},
	}

	for _, tt := range tests {
		allowed, err := gate.Allowed(tt.role, tt.resource, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.allowed, allowed, "%s %s %s", tt.role, tt.resource, tt.action)
	}
}

func TestAdminInheritsEmployeePermissions(t *testing.T) {
	gate, err := NewGate()
	require.NoError(t, err)

	for _, action := range []string{ActionCreate, ActionRead} {
		allowed, err := gate.Allowed(models.RoleAdmin, ResourceAttendance, action)
		require.NoError(t, err)
		assert.True(t, allowed, action)
	}
}

func TestUnknownRoleDeniedEverywhere(t *testing.T) {
	gate, err := NewGate()
	require.NoError(t, err)

	allowed, err := gate.Allowed("Contractor", ResourceAttendance, ActionRead)
	require.NoError(t, err)
	assert.False(t, allowed)
}
