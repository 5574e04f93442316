package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseApplicationStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   ApplicationStatus
		wantOK bool
	}{
		{"pending", ApplicationStatusPending, true},
		{"viewed", ApplicationStatusViewed, true},
		// легаси-синоним
		{"reviewed", ApplicationStatusViewed, true},
		{"REVIEWED", ApplicationStatusViewed, true},
		{"  accepted  ", ApplicationStatusAccepted, true},
		{"rejected", ApplicationStatusRejected, true},
		{"archived", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseApplicationStatus(tt.input)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestValidUserRole(t *testing.T) {
	assert.True(t, ValidUserRole("user"))
	assert.True(t, ValidUserRole("employer"))
	assert.True(t, ValidUserRole("admin"))
	assert.False(t, ValidUserRole("superadmin"))
	assert.False(t, ValidUserRole(""))
}
