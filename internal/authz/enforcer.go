package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Role-based model with inheritance. Roles are fixed for this service, so the
// policy set lives in code instead of a database adapter.
const rbacModel = `
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

// policies maps role -> resource -> allowed actions.
var policies = [][3]string{
	{"EMPLOYEE", "shift", "clock"},
	{"EMPLOYEE", "shift", "read"},
	{"MANAGER", "report", "read"},
	{"MANAGER", "report", "export"},
	{"MANAGER", "employee", "read"},
	{"ADMIN", "employee", "write"},
}

// roleInheritance: ADMIN inherits MANAGER, MANAGER inherits EMPLOYEE.
var roleInheritance = [][2]string{
	{"ADMIN", "MANAGER"},
	{"MANAGER", "EMPLOYEE"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range roleInheritance {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
