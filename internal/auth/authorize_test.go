package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaaarruuu/communitydesk/internal/auth"
	"github.com/aaaarruuu/communitydesk/internal/model"
)

func TestCanModify(t *testing.T) {
	admin := auth.Session{UserID: "u-admin", Role: model.RoleAdmin}
	owner := auth.Session{UserID: "u-owner", Role: model.RoleMember}
	other := auth.Session{UserID: "u-other", Role: model.RoleMember}

	event := model.Event{ID: "e1", CreatedBy: "u-owner"}
	issue := model.Issue{ID: "i1", ReporterID: "u-owner"}

	cases := []struct {
		name    string
		session auth.Session
		record  auth.Ownable
		want    bool
	}{
		{"admin can modify any event", admin, event, true},
		{"admin can modify any issue", admin, issue, true},
		{"owner can modify own event", owner, event, true},
		{"owner can modify own issue", owner, issue, true},
		{"member cannot modify others' event", other, event, false},
		{"member cannot modify others' issue", other, issue, false},
		{"empty session cannot modify", auth.Session{}, event, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, auth.CanModify(tc.session, tc.record))
		})
	}
}

func TestCanManageRepresentatives(t *testing.T) {
	assert.True(t, auth.CanManageRepresentatives(auth.Session{Role: model.RoleAdmin}))
	assert.False(t, auth.CanManageRepresentatives(auth.Session{Role: model.RoleMember}))
	assert.False(t, auth.CanManageRepresentatives(auth.Session{}))
}
