// Package permission decides which areas of the board a user may enter. Users
// are not assigned roles individually: the service a user works in is mapped to
// a role, and roles are granted areas.
package permission

import (
	"fmt"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	AreaAdminBoard    = "board:admin"
	AreaEmployeeBoard = "board:employee"

	ActionAccess = "access"
)

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

var basePolicies = [][]string{
	{RoleAdmin, AreaAdminBoard, ActionAccess},
	{RoleAdmin, AreaEmployeeBoard, ActionAccess},
	{RoleEmployee, AreaEmployeeBoard, ActionAccess},
}

type Enforcer struct {
	enforcer   *casbin.Enforcer
	persistent bool
	mu         sync.RWMutex
	logger     logger.Interface
}

// NewEnforcer keeps policies in memory only.
func NewEnforcer(adminServices []string, log logger.Interface) (*Enforcer, error) {
	return newEnforcer(nil, adminServices, log)
}

// NewPersistentEnforcer stores policies in the casbin_rule table of db so they can
// be inspected alongside the application data. The admin services from config
// replace whatever mapping was stored before.
func NewPersistentEnforcer(db *gorm.DB, adminServices []string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}
	return newEnforcer(adapter, adminServices, log)
}

func newEnforcer(adapter persist.Adapter, adminServices []string, log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	var enforcer *casbin.Enforcer
	if adapter != nil {
		enforcer, err = casbin.NewEnforcer(m, adapter)
	} else {
		enforcer, err = casbin.NewEnforcer(m)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{
		enforcer:   enforcer,
		persistent: adapter != nil,
		logger:     log,
	}
	if err := e.SyncAdminServices(adminServices); err != nil {
		return nil, err
	}
	return e, nil
}

func serviceSubject(service string) string {
	return "service:" + service
}

// SyncAdminServices rebuilds the policy so that exactly the given services map to
// the admin role. Only the rules that differ are removed or added, each batch in
// its own statement, so a single-connection sqlite pool is never asked for a
// second connection.
func (e *Enforcer) SyncAdminServices(services []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var grouping [][]string
	seen := make(map[string]bool)
	for _, s := range services {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		grouping = append(grouping, []string{serviceSubject(s), RoleAdmin})
	}

	current, err := e.enforcer.GetPolicy()
	if err != nil {
		return fmt.Errorf("failed to read policies: %w", err)
	}
	if err := e.reconcile(current, basePolicies, e.enforcer.RemovePolicies, e.enforcer.AddPolicies); err != nil {
		e.logger.Errorw("failed to sync base policies", "error", err)
		return fmt.Errorf("failed to sync base policies: %w", err)
	}

	currentGrouping, err := e.enforcer.GetGroupingPolicy()
	if err != nil {
		return fmt.Errorf("failed to read admin services: %w", err)
	}
	if err := e.reconcile(currentGrouping, grouping, e.enforcer.RemoveGroupingPolicies, e.enforcer.AddGroupingPolicies); err != nil {
		e.logger.Errorw("failed to map admin services", "error", err)
		return fmt.Errorf("failed to map admin services: %w", err)
	}

	e.logger.Infow("admin services synced", "count", len(grouping))
	return nil
}

type ruleBatchFunc func(rules [][]string) (bool, error)

// reconcile turns the current rule set into want.
func (e *Enforcer) reconcile(current, want [][]string, remove, add ruleBatchFunc) error {
	wanted := make(map[string]bool, len(want))
	for _, r := range want {
		wanted[ruleKey(r)] = true
	}
	have := make(map[string]bool, len(current))
	var stale [][]string
	for _, r := range current {
		have[ruleKey(r)] = true
		if !wanted[ruleKey(r)] {
			stale = append(stale, r)
		}
	}
	var missing [][]string
	for _, r := range want {
		if !have[ruleKey(r)] {
			missing = append(missing, r)
		}
	}

	if len(stale) > 0 {
		if _, err := remove(stale); err != nil {
			return err
		}
	}
	if len(missing) > 0 {
		if _, err := add(missing); err != nil {
			return err
		}
	}
	return nil
}

func ruleKey(rule []string) string {
	return strings.Join(rule, "\x00")
}

// IsAdmin reports whether users of service may manage the admin board. Matching
// is exact.
func (e *Enforcer) IsAdmin(service string) (bool, error) {
	if service == "" {
		return false, nil
	}
	return e.Allowed(service, AreaAdminBoard)
}

// Allowed reports whether users of service may access area.
func (e *Enforcer) Allowed(service, area string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	subject := serviceSubject(service)
	if ok, err := e.enforcer.Enforce(subject, area, ActionAccess); err != nil || ok {
		if err != nil {
			e.logger.Errorw("permission check failed", "error", err, "service", service, "area", area)
			return false, fmt.Errorf("permission check failed: %w", err)
		}
		return true, nil
	}

	// every signed-in user is an employee
	ok, err := e.enforcer.Enforce(RoleEmployee, area, ActionAccess)
	if err != nil {
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return ok, nil
}

// AdminServices returns the services currently mapped to the admin role.
func (e *Enforcer) AdminServices() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	users, err := e.enforcer.GetUsersForRole(RoleAdmin)
	if err != nil {
		return nil
	}
	services := make([]string, 0, len(users))
	for _, u := range users {
		services = append(services, strings.TrimPrefix(u, "service:"))
	}
	return services
}
