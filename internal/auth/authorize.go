package auth

// Ownable is implemented by records that carry the id of the user who
// created them (created_by for events, reporter_id for issues).
type Ownable interface {
	OwnerID() string
}

// CanModify reports whether the session user may edit or delete the given
// record: admins may modify anything, other users only their own records.
func CanModify(s Session, record Ownable) bool {
	if s.IsAdmin() {
		return true
	}
	return s.UserID == record.OwnerID()
}

// CanManageRepresentatives reports whether the session user may create,
// edit, or delete representative records. Representatives have no owner,
// so mutations are admin-only.
func CanManageRepresentatives(s Session) bool {
	return s.IsAdmin()
}
