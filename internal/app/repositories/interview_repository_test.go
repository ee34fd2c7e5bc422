package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingForStudentQueryBoundsByTimeOnly(t *testing.T) {
	repo := NewInterviewRepository(nil)

	from := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	sql, args, err := repo.upcomingForStudentQuery(42, from)
	require.NoError(t, err)

	// The dashboard shows every future interview with its result badge,
	// including ones already marked PASS/FAIL or RESCHEDULED.
	assert.NotContains(t, sql, "i.result =")
	assert.Contains(t, sql, "a.student_id =")
	assert.Contains(t, sql, "i.schedule_time >=")
	assert.Contains(t, sql, "ORDER BY i.schedule_time ASC")
	assert.Equal(t, []interface{}{int64(42), from}, args)
}
