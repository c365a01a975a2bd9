package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusResolved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusRejected, true},
		{StatusInProgress, StatusInProgress, false},
		{StatusInProgress, StatusPending, false},
		{StatusResolved, StatusInProgress, false},
		{StatusResolved, StatusResolved, false},
		{StatusRejected, StatusPending, false},
		{StatusPending, "Escalated", false},
		{"", StatusResolved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusResolved, StatusRejected} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("pending"), "status values are case-sensitive")
	assert.False(t, ValidStatus("Escalated"))
	assert.False(t, ValidStatus(""))
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{RoleUser, RoleObserver, RoleAdmin, RoleSuperadmin} {
		assert.True(t, ValidRole(r))
	}
	assert.False(t, ValidRole("root"))
	assert.False(t, ValidRole(""))
}
