package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusValid(t *testing.T) {
	for _, s := range []ApplicationStatus{
		StatusApplied, StatusShortlisted, StatusInterviewScheduled,
		StatusOffered, StatusRejected, StatusWithdrawn,
	} {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, ApplicationStatus("PLACED").Valid())
	assert.False(t, ApplicationStatus("applied").Valid())
}

func TestApplicationStatusColor(t *testing.T) {
	assert.Equal(t, "#2563eb", StatusApplied.Color())
	assert.Equal(t, "#22c55e", StatusOffered.Color())
	assert.Equal(t, "#6b7280", StatusRejected.Color())
	// Unknown statuses fall back to neutral gray.
	assert.Equal(t, "#999999", ApplicationStatus("BOGUS").Color())
}

func TestInterviewResultValidAndColor(t *testing.T) {
	for _, r := range []InterviewResult{ResultPending, ResultPass, ResultFail, ResultRescheduled} {
		assert.True(t, r.Valid(), "expected %s to be valid", r)
	}
	assert.False(t, InterviewResult("HIRED").Valid())

	assert.Equal(t, "#16a34a", ResultPass.Color())
	assert.Equal(t, "#ef4444", ResultFail.Color())
	assert.Equal(t, "#666666", InterviewResult("HIRED").Color())
}

func TestDeliveryModeValid(t *testing.T) {
	assert.True(t, ModeOnline.Valid())
	assert.True(t, ModeOffline.Valid())
	assert.False(t, DeliveryMode("HYBRID").Valid())
	assert.False(t, DeliveryMode("online").Valid())
}

func TestDeadlineBadge(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name      string
		daysLeft  *int
		wantLabel string
		wantColor string
	}{
		{"no deadline", nil, "No Deadline", DeadlineColorNone},
		{"expired", intPtr(-3), "EXPIRED", DeadlineColorExpired},
		{"due today", intPtr(0), "0 days left", DeadlineColorOpen},
		{"one day", intPtr(1), "1 days left", DeadlineColorOpen},
		{"many days", intPtr(14), "14 days left", DeadlineColorOpen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, color := DeadlineBadge(tt.daysLeft)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantColor, color)
		})
	}
}

func TestStudentFullName(t *testing.T) {
	s := &Student{FirstName: "Aarav", LastName: "Sharma"}
	assert.Equal(t, "Aarav Sharma", s.FullName())
}
