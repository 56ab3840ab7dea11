package profiles

import "strings"

// Role is the fixed set of organizational roles that profile guidance is
// authored against.
type Role string

const (
	RoleFrontLine   Role = "front_line"
	RoleShiftLead   Role = "shift_lead"
	RoleProgramLead Role = "program_lead"
)

// roleKeywords is checked in order; the first group with a matching keyword
// wins. Program-level titles are matched before shift-level ones because
// titles like "program shift coordinator" should resolve to the wider scope.
var roleKeywords = []struct {
	role     Role
	keywords []string
}{
	{RoleProgramLead, []string{"program", "director", "manager", "coordinator", "administrator"}},
	{RoleShiftLead, []string{"shift", "lead", "supervisor", "charge", "senior"}},
}

// NormalizeRole classifies a free-text job title into one of the fixed role
// keys by case-insensitive substring match, in the documented keyword order.
// Titles matching nothing, including the empty string, default to
// RoleFrontLine; the default is deliberate and observable rather than an
// accident of fallthrough.
func NormalizeRole(title string) Role {
	t := strings.ToLower(title)
	for _, group := range roleKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(t, kw) {
				return group.role
			}
		}
	}
	return RoleFrontLine
}

// Roles returns the fixed role keys in declaration order.
func Roles() []Role {
	return []Role{RoleFrontLine, RoleShiftLead, RoleProgramLead}
}
