package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		department Department
		want       PayoutCategory
	}{
		{"chatter", RoleChatter, DepartmentChatting, CategoryChatter},
		{"chatting manager", RoleChattingManager, DepartmentChatting, CategoryManager},
		{"va", RoleVA, DepartmentOps, CategoryVA},
		{"va manager", RoleVAManager, DepartmentOps, CategoryVA},
		{"affiliator", RoleAffiliator, DepartmentMarketing, CategoryAffiliate},
		{"other in affiliate department", RoleOther, DepartmentAffiliate, CategoryAffiliate},
		{"other elsewhere", RoleOther, DepartmentProduction, CategoryNone},
		{"unknown role", Role("intern"), DepartmentOps, CategoryNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.role, tt.department))
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	roles := []Role{RoleChatter, RoleChattingManager, RoleVA, RoleVAManager, RoleAffiliator, RoleOther}
	departments := []Department{DepartmentChatting, DepartmentMarketing, DepartmentProduction, DepartmentOps, DepartmentAffiliate}

	valid := map[PayoutCategory]bool{
		CategoryChatter:   true,
		CategoryManager:   true,
		CategoryVA:        true,
		CategoryAffiliate: true,
		CategoryNone:      true,
	}
	for _, role := range roles {
		for _, department := range departments {
			got := Classify(role, department)
			assert.True(t, valid[got], "role=%s department=%s yielded %s", role, department, got)
		}
	}
}
