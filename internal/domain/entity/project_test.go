package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/natnael-haile/hireflow/internal/domain/entity"
)

func TestProjectStatusTransitionsAreForwardOnly(t *testing.T) {
	cases := []struct {
		from    entity.ProjectStatus
		to      entity.ProjectStatus
		allowed bool
	}{
		{entity.ProjectStatusAwaiting, entity.ProjectStatusScoring, true},
		{entity.ProjectStatusAwaiting, entity.ProjectStatusReady, true},
		{entity.ProjectStatusScoring, entity.ProjectStatusReady, true},
		{entity.ProjectStatusScoring, entity.ProjectStatusAwaiting, false},
		{entity.ProjectStatusReady, entity.ProjectStatusScoring, false},
		{entity.ProjectStatusReady, entity.ProjectStatusReady, false},
		{entity.ProjectStatusReady, entity.ProjectStatusPendingActivation, true},
		{entity.ProjectStatusAwaiting, entity.ProjectStatusPendingActivation, false},
		{entity.ProjectStatusScoring, entity.ProjectStatusActivationInProgress, false},
		{entity.ProjectStatusPendingActivation, entity.ProjectStatusActivationInProgress, true},
		{entity.ProjectStatusActivationInProgress, entity.ProjectStatusPendingActivation, false},
		{entity.ProjectStatusPendingActivation, entity.ProjectStatusReady, false},
	}
	for _, tc := range cases {
		p := &entity.Project{Status: tc.from}
		assert.Equal(t, tc.allowed, p.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTierByNumber(t *testing.T) {
	growth, err := entity.TierByNumber(2)
	assert.NoError(t, err)
	assert.Equal(t, "Growth", growth.Name)
	assert.Equal(t, 990.0, growth.PriceMonthly)

	_, err = entity.TierByNumber(4)
	assert.Error(t, err)
}

func TestUserRoles(t *testing.T) {
	u := entity.User{Roles: []entity.UserRole{entity.UserRoleRecruiter}}
	assert.True(t, u.HasRole(entity.UserRoleRecruiter))
	assert.False(t, u.IsStaff())

	u.Roles = append(u.Roles, entity.UserRoleOpsManager)
	assert.True(t, u.IsStaff())
}
