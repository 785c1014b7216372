package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aaaarruuu/communitydesk/internal/model"
)

func TestEventIsUpcoming(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	assert.True(t, model.Event{EventDate: today}.IsUpcoming())
	assert.True(t, model.Event{EventDate: "2999-01-01"}.IsUpcoming())
	assert.False(t, model.Event{EventDate: "2020-01-01"}.IsUpcoming())
	assert.False(t, model.Event{EventDate: "not-a-date"}.IsUpcoming())
}

func TestEventOwnerID(t *testing.T) {
	ev := model.Event{ID: "e1", CreatedBy: "u1"}
	assert.Equal(t, "u1", ev.OwnerID())
}

func TestIssueOwnerID(t *testing.T) {
	is := model.Issue{ID: "i1", ReporterID: "u2"}
	assert.Equal(t, "u2", is.OwnerID())
}
