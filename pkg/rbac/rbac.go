// Package rbac is the access control gate: a single {role, resource,
// action} policy table consulted before every operation, instead of ad-hoc
// role checks scattered across handlers.
package rbac

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"employee-management-system/models"
)

const (
	ResourceEmployees   = "employees"
	ResourceDepartments = "departments"
	ResourceAttendance  = "attendance"
	ResourceLeaves      = "leaves"
	ResourceSalaries    = "salaries"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionStats  = "stats"
	// List covers the full employee directory; plain read is limited to
	// the caller's own record.
	ActionList = "list"
	// Decide approves or rejects a leave request.
	ActionDecide = "decide"
	// Manage covers the admin-only attendance operations: QR pass
	// generation and absent marking.
	ActionManage = "manage"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Ownership checks (a caller touching only records where user == self) are
// enforced in the handlers; this table answers whether the role may perform
// the action on the resource at all.
var policies = [][3]string{
	{models.RoleEmployee, ResourceEmployees, ActionRead},
	{models.RoleEmployee, ResourceDepartments, ActionRead},
	{models.RoleEmployee, ResourceAttendance, ActionRead},
	{models.RoleEmployee, ResourceAttendance, ActionCreate},
	{models.RoleEmployee, ResourceLeaves, ActionRead},
	{models.RoleEmployee, ResourceLeaves, ActionCreate},
	{models.RoleEmployee, ResourceLeaves, ActionDelete},
	{models.RoleEmployee, ResourceSalaries, ActionRead},

	{models.RoleAdmin, ResourceEmployees, ActionCreate},
	{models.RoleAdmin, ResourceEmployees, ActionUpdate},
	{models.RoleAdmin, ResourceEmployees, ActionDelete},
	{models.RoleAdmin, ResourceEmployees, ActionStats},
	{models.RoleAdmin, ResourceEmployees, ActionList},
	{models.RoleAdmin, ResourceDepartments, ActionCreate},
	{models.RoleAdmin, ResourceDepartments, ActionUpdate},
	{models.RoleAdmin, ResourceDepartments, ActionDelete},
	{models.RoleAdmin, ResourceAttendance, ActionUpdate},
	{models.RoleAdmin, ResourceAttendance, ActionDelete},
	{models.RoleAdmin, ResourceAttendance, ActionStats},
	{models.RoleAdmin, ResourceAttendance, ActionManage},
	{models.RoleAdmin, ResourceLeaves, ActionDecide},
	{models.RoleAdmin, ResourceSalaries, ActionCreate},
	{models.RoleAdmin, ResourceSalaries, ActionUpdate},
	{models.RoleAdmin, ResourceSalaries, ActionDelete},
}

type Gate struct {
	enforcer *casbin.Enforcer
}

func NewGate() (*Gate, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to build rbac model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to build rbac enforcer: %w", err)
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("failed to add policy %v: %w", p, err)
		}
	}

	// Admin inherits everything an Employee may do.
	if _, err := enforcer.AddGroupingPolicy(models.RoleAdmin, models.RoleEmployee); err != nil {
		return nil, fmt.Errorf("failed to add role inheritance: %w", err)
	}

	return &Gate{enforcer: enforcer}, nil
}

// Allowed reports whether the role may perform the action on the resource.
func (g *Gate) Allowed(role, resource, action string) (bool, error) {
	return g.enforcer.Enforce(role, resource, action)
}
