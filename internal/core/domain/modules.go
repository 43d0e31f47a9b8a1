package domain

import "strings"

// ModuleKey identifies a feature module of the practice-management product.
type ModuleKey string

const (
	ModuleDashboard    ModuleKey = "dashboard"
	ModuleClients      ModuleKey = "clients"
	ModuleProjects     ModuleKey = "projects"
	ModuleTasks        ModuleKey = "tasks"
	ModuleTimeExpenses ModuleKey = "time-expenses"
	ModuleBilling      ModuleKey = "billing"
	ModuleReports      ModuleKey = "reports"
	ModuleCalendar     ModuleKey = "calendar"
	ModulePractice     ModuleKey = "practice"
	ModuleDocuments    ModuleKey = "documents"
)

// KnownModules is the closed set of module keys the product ships with.
var KnownModules = []ModuleKey{
	ModuleDashboard,
	ModuleClients,
	ModuleProjects,
	ModuleTasks,
	ModuleTimeExpenses,
	ModuleBilling,
	ModuleReports,
	ModuleCalendar,
	ModulePractice,
	ModuleDocuments,
}

// moduleDeps maps a module to the modules a grant of it unlocks.
//
// The mapping is deliberately applied exactly one hop deep: granting
// "clients" unlocks "projects", but NOT whatever "projects" unlocks,
// unless the user separately holds "projects". This bounds the blast
// radius of a single over-provisioned grant.
var moduleDeps = map[ModuleKey][]ModuleKey{
	ModuleClients:  {ModuleProjects, ModuleTasks, ModuleTimeExpenses, ModuleBilling, ModuleReports},
	ModuleProjects: {ModuleTasks, ModuleTimeExpenses, ModuleBilling, ModuleCalendar},
	ModuleTasks:    {ModuleTimeExpenses, ModuleCalendar, ModuleReports},
	ModuleCalendar: {ModuleTasks, ModuleProjects},
	ModuleReports:  {ModuleDashboard},
	ModulePractice: {ModuleReports, ModuleDashboard},
}

// adminRoles bypass granular module permission checks entirely.
// Membership is matched case-insensitively.
var adminRoles = map[string]struct{}{
	"firm_admin":  {},
	"firm_owner":  {},
	"saas_owner":  {},
	"super_admin": {},
	"manager":     {},
	"admin":       {},
}

// IsAdminRole reports whether role belongs to the administrative role set.
func IsAdminRole(role string) bool {
	_, ok := adminRoles[strings.ToLower(strings.TrimSpace(role))]
	return ok
}

// KnownModule reports whether key is part of the closed module set.
func KnownModule(key ModuleKey) bool {
	for _, m := range KnownModules {
		if m == key {
			return true
		}
	}
	return false
}

// ImpliedModules returns the union of the granted modules and every module
// reachable in exactly one hop through moduleDeps.
func ImpliedModules(granted []ModuleKey) map[ModuleKey]struct{} {
	implied := make(map[ModuleKey]struct{}, len(granted))
	for _, g := range granted {
		implied[g] = struct{}{}
		for _, dep := range moduleDeps[g] {
			implied[dep] = struct{}{}
		}
	}
	return implied
}
