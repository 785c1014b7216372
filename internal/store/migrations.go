package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'Member' CHECK(role IN ('Admin', 'Member')),
	contact       TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL DEFAULT '',
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS events (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	event_date  TEXT NOT NULL,
	event_time  TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	venue       TEXT NOT NULL,
	organizer   TEXT NOT NULL DEFAULT '',
	created_by  TEXT NOT NULL REFERENCES users(id),
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS issues (
	id            TEXT PRIMARY KEY,
	category      TEXT NOT NULL,
	description   TEXT NOT NULL,
	location      TEXT NOT NULL,
	reporter_id   TEXT NOT NULL REFERENCES users(id),
	status        TEXT NOT NULL DEFAULT 'Pending'
		CHECK(status IN ('Pending', 'In-Progress', 'Completed', 'Cancelled')),
	priority      TEXT NOT NULL DEFAULT 'Medium'
		CHECK(priority IN ('Low', 'Medium', 'High', 'Critical')),
	date_reported DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS representatives (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	category TEXT NOT NULL
		CHECK(category IN ('Plumber', 'Electrician', 'Mechanic', 'Gardener', 'Cleaner', 'Other')),
	contact  TEXT NOT NULL,
	email    TEXT NOT NULL DEFAULT '',
	status   TEXT NOT NULL DEFAULT 'Available'
		CHECK(status IN ('Available', 'Busy', 'Unavailable'))
);

CREATE TABLE IF NOT EXISTS assignments (
	id            TEXT PRIMARY KEY,
	issue_id      TEXT NOT NULL UNIQUE REFERENCES issues(id) ON DELETE CASCADE,
	rep_id        TEXT NOT NULL REFERENCES representatives(id),
	status        TEXT NOT NULL DEFAULT 'Assigned',
	notes         TEXT NOT NULL DEFAULT '',
	assigned_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_events_event_date ON events(event_date);
CREATE INDEX IF NOT EXISTS idx_events_created_by ON events(created_by);
CREATE INDEX IF NOT EXISTS idx_issues_status ON issues(status);
CREATE INDEX IF NOT EXISTS idx_issues_category ON issues(category);
CREATE INDEX IF NOT EXISTS idx_issues_reporter_id ON issues(reporter_id);
CREATE INDEX IF NOT EXISTS idx_issues_date_reported ON issues(date_reported);
CREATE INDEX IF NOT EXISTS idx_reps_category ON representatives(category);
CREATE INDEX IF NOT EXISTS idx_reps_status ON representatives(status);
CREATE INDEX IF NOT EXISTS idx_assignments_rep_id ON assignments(rep_id);

CREATE VIEW IF NOT EXISTS dashboard_stats AS
SELECT
	(SELECT COUNT(*) FROM issues WHERE status = 'Pending')          AS pending_issues,
	(SELECT COUNT(*) FROM issues WHERE status = 'In-Progress')      AS inprogress_issues,
	(SELECT COUNT(*) FROM issues WHERE status = 'Completed')        AS completed_issues,
	(SELECT COUNT(*) FROM events WHERE event_date >= date('now'))   AS upcoming_events,
	(SELECT COUNT(*) FROM events WHERE event_date < date('now'))    AS past_events,
	(SELECT COUNT(*) FROM representatives WHERE status = 'Available') AS available_reps;

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
