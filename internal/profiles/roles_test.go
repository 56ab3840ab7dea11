package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  Role
	}{
		{name: "program director", title: "Program Director", want: RoleProgramLead},
		{name: "case manager", title: "Case Manager", want: RoleProgramLead},
		{name: "volunteer coordinator", title: "Volunteer Coordinator", want: RoleProgramLead},
		{name: "administrator", title: "Administrator", want: RoleProgramLead},
		{name: "shift supervisor", title: "Shift Supervisor", want: RoleShiftLead},
		{name: "charge nurse", title: "Charge Nurse", want: RoleShiftLead},
		{name: "senior support worker", title: "Senior Support Worker", want: RoleShiftLead},
		{name: "team lead", title: "Team Lead", want: RoleShiftLead},
		{name: "support worker", title: "Support Worker", want: RoleFrontLine},
		{name: "driver", title: "Driver", want: RoleFrontLine},
		{name: "empty title", title: "", want: RoleFrontLine},
		{name: "case insensitive", title: "pRoGrAm DiReCtOr", want: RoleProgramLead},
		// "program shift coordinator" hits both groups; the program-level
		// group is checked first and wins.
		{name: "program keyword outranks shift keyword", title: "Program Shift Coordinator", want: RoleProgramLead},
		{name: "keyword inside a longer word", title: "Leadership Fellow", want: RoleShiftLead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRole(tt.title))
		})
	}
}

func TestRoles(t *testing.T) {
	assert.Equal(t, []Role{RoleFrontLine, RoleShiftLead, RoleProgramLead}, Roles())
}
