package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusplacement/portal/internal/app/models"
)

func TestFromOpportunityBadge(t *testing.T) {
	daysLeft := 5
	o := &models.Opportunity{
		ID:       1,
		Title:    "Backend Engineer Intern",
		Company:  "Acme Corp",
		DaysLeft: &daysLeft,
	}

	resp := FromOpportunity(o)
	assert.Equal(t, "5 days left", resp.DeadlineBadge.Label)
	assert.Equal(t, models.DeadlineColorOpen, resp.DeadlineBadge.Color)
	assert.Nil(t, resp.Applied)
	assert.Nil(t, resp.Eligible)
}

func TestFromOpportunityNoDeadline(t *testing.T) {
	o := &models.Opportunity{ID: 2, Title: "Data Analyst", Company: "Beta Ltd"}

	resp := FromOpportunity(o)
	assert.Equal(t, "No Deadline", resp.DeadlineBadge.Label)
	assert.Equal(t, models.DeadlineColorNone, resp.DeadlineBadge.Color)
}

func TestFromApplicationBadge(t *testing.T) {
	a := &models.Application{
		ID:     10,
		Status: models.StatusShortlisted,
	}

	resp := FromApplication(a)
	assert.Equal(t, "SHORTLISTED", resp.StatusBadge.Label)
	assert.Equal(t, models.StatusShortlisted.Color(), resp.StatusBadge.Color)
}

func TestFromApplicationsEmpty(t *testing.T) {
	out := FromApplications(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFromInterviewsBadges(t *testing.T) {
	interviews := []*models.Interview{
		{ID: 1, Result: models.ResultPending},
		{ID: 2, Result: models.ResultPass},
	}

	out := FromInterviews(interviews)
	assert.Len(t, out, 2)
	assert.Equal(t, "PENDING", out[0].ResultBadge.Label)
	assert.Equal(t, models.ResultPending.Color(), out[0].ResultBadge.Color)
	assert.Equal(t, "PASS", out[1].ResultBadge.Label)
	assert.Equal(t, models.ResultPass.Color(), out[1].ResultBadge.Color)
}
