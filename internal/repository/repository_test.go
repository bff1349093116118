package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unionsite/internal/model"
)

var (
	t0 = time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	t1 = time.Date(2025, 9, 2, 9, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T, driver string) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mockDB.Close()
	})
	return sqlx.NewDb(mockDB, driver), mock
}

var executiveCols = []string{"id", "slug", "name", "role", "faculty", "tier", "tenure_start", "tenure_end",
	"contacts", "photo_url", "display_order", "created_at", "updated_at"}

func TestExecutiveRepository_ListCentralTier(t *testing.T) {
	db, mock := newMock(t, "mysql")

	rows := sqlmock.NewRows(executiveCols).
		AddRow(4, "ada", "Ada Obi", "President", "Engineering", "Central", t0, nil, []byte(`{"email":"president@union.example"}`), "", 1, t0, t0).
		AddRow(9, "ben", "Ben Ade", "Secretary", "Law", "Central", t0, t1, []byte(`{}`), "", 2, t0, t0).
		AddRow(2, "cy", "Cy Eze", "Treasurer", "Arts", "Central", t0, nil, nil, "", 3, t0, t0)
	mock.ExpectQuery(regexp.QuoteMeta("FROM executives WHERE tier = ? ORDER BY display_order ASC, name ASC")).
		WithArgs("Central").
		WillReturnRows(rows)

	got, err := NewExecutiveRepository(db).List(context.Background(), ExecutiveFilter{Tier: "Central"})
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, e := range got {
		assert.Equal(t, "Central", e.Tier)
		assert.Equal(t, i+1, e.DisplayOrder)
	}
	assert.Equal(t, "president@union.example", got[0].Contacts.Email)
	assert.Nil(t, got[0].TenureEnd)
	require.NotNil(t, got[1].TenureEnd)
	assert.Equal(t, t1, *got[1].TenureEnd)
}

func TestExecutiveRepository_ListNoFilter(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectQuery(regexp.QuoteMeta("FROM executives ORDER BY display_order ASC")).
		WithArgs().
		WillReturnRows(sqlmock.NewRows(executiveCols))

	got, err := NewExecutiveRepository(db).List(context.Background(), ExecutiveFilter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExecutiveRepository_RemoteFailure(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectQuery("FROM executives").WillReturnError(errors.New("connection reset by peer"))

	got, err := NewExecutiveRepository(db).List(context.Background(), ExecutiveFilter{Tier: "Faculty"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrRemote)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestExecutiveRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMock(t, "postgres")

	mock.ExpectQuery(regexp.QuoteMeta("FROM executives WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := NewExecutiveRepository(db).GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewsRepository_ListPublishedByTag(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"mysql", "WHERE is_published = ? AND JSON_CONTAINS(tags, JSON_QUOTE(?)) ORDER BY published_at DESC, id DESC LIMIT ?"},
		{"postgres", "WHERE is_published = $1 AND tags @> jsonb_build_array(CAST($2 AS TEXT)) ORDER BY published_at DESC, id DESC LIMIT $3"},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			db, mock := newMock(t, tt.driver)

			rows := sqlmock.NewRows([]string{"id", "slug", "title", "excerpt", "body_md", "tags", "cover_url",
				"is_published", "published_at", "created_at", "updated_at"}).
				AddRow(1, "fees", "Fees update", "", "# Fees", []byte(`["welfare"]`), "", true, t1, t0, t1)
			mock.ExpectQuery(regexp.QuoteMeta(tt.want)).
				WithArgs(true, "welfare", 5).
				WillReturnRows(rows)

			got, err := NewNewsRepository(db).List(context.Background(), NewsFilter{Tag: "welfare", Limit: 5})
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, model.StringList{"welfare"}, got[0].Tags)
			assert.Equal(t, "# Fees", got[0].BodyMD)
		})
	}
}

func TestNewsRepository_CreateStampsPublishedAt(t *testing.T) {
	db, mock := newMock(t, "mysql")

	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })

	mock.ExpectExec("INSERT INTO news").
		WithArgs("open-day", "Open day", "", "body", "[]", "", true, now).
		WillReturnResult(sqlmock.NewResult(11, 1))

	n := &model.News{Slug: "open-day", Title: "Open day", BodyMD: "body", IsPublished: true}
	require.NoError(t, NewNewsRepository(db).Create(context.Background(), n))
	assert.Equal(t, int64(11), n.ID)
	require.NotNil(t, n.PublishedAt)
	assert.Equal(t, now, *n.PublishedAt)
}

func TestEventRepository_ListUpcoming(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectQuery(regexp.QuoteMeta("FROM events WHERE category = ? AND end_at >= ? ORDER BY start_at ASC")).
		WithArgs("Sports", t0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := NewEventRepository(db).List(context.Background(), EventFilter{Category: "Sports", EndsAfter: t0})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSpotlightRepository_CreatePostgres(t *testing.T) {
	db, mock := newMock(t, "postgres")

	mock.ExpectQuery(regexp.QuoteMeta("VALUES ($1, $2, $3, $4, $5, $6) RETURNING id")).
		WithArgs("Welcome", "", "https://cdn.example/s/1-a.png", "", 1, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))

	s := &model.Spotlight{Title: "Welcome", ImageURL: "https://cdn.example/s/1-a.png", DisplayOrder: 1, IsActive: true}
	require.NoError(t, NewSpotlightRepository(db).Create(context.Background(), s))
	assert.Equal(t, int64(21), s.ID)
}

func TestSpotlightRepository_UpdateMissing(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectExec("UPDATE spotlights SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewSpotlightRepository(db).Update(context.Background(), &model.Spotlight{ID: 99})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnnouncementRepository_Active(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = ? ORDER BY updated_at DESC LIMIT 1")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "message_md", "type", "is_active", "created_at", "updated_at"}).
			AddRow(3, "Exams", "**Good luck**", "celebration", true, t0, t1))

	a, err := NewAnnouncementRepository(db).Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.ID)
	assert.Equal(t, model.AnnouncementCelebration, a.Type)
}

func TestAnnouncementRepository_ActiveNone(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectQuery("FROM global_announcements").WillReturnError(sql.ErrNoRows)

	_, err := NewAnnouncementRepository(db).Active(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnnouncementRepository_Activate(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("WHERE is_active = ? AND id <> ?")).
		WithArgs(false, true, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")).
		WithArgs(true, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewAnnouncementRepository(db).Activate(context.Background(), 3))
}

func TestAnnouncementRepository_ActivateMissingRollsBack(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("WHERE is_active = ? AND id <> ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("WHERE id = ?")).
		WithArgs(true, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := NewAnnouncementRepository(db).Activate(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnnouncementRepository_CreateIsInactive(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectExec("INSERT INTO global_announcements").
		WithArgs("Strike", "Lectures cancelled", "urgent", false).
		WillReturnResult(sqlmock.NewResult(8, 1))

	a := &model.Announcement{Title: "Strike", MessageMD: "Lectures cancelled", Type: model.AnnouncementUrgent, IsActive: true}
	require.NoError(t, NewAnnouncementRepository(db).Create(context.Background(), a))
	assert.False(t, a.IsActive)
	assert.Equal(t, int64(8), a.ID)
}

func TestAnnouncementRepository_CreateActive(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE is_active = ?")).
		WithArgs(false, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO global_announcements").
		WithArgs("Strike", "Lectures cancelled", "urgent", true).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	a := &model.Announcement{Title: "Strike", MessageMD: "Lectures cancelled", Type: model.AnnouncementUrgent, IsActive: true}
	require.NoError(t, NewAnnouncementRepository(db).CreateActive(context.Background(), a))
	assert.True(t, a.IsActive)
	assert.Equal(t, int64(9), a.ID)
}

func TestAnnouncementRepository_CreateActiveInsertFailureRollsBack(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("WHERE is_active = ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO global_announcements").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	a := &model.Announcement{Title: "Strike", MessageMD: "x", Type: model.AnnouncementUrgent, IsActive: true}
	err := NewAnnouncementRepository(db).CreateActive(context.Background(), a)
	assert.ErrorIs(t, err, ErrRemote)
	assert.Zero(t, a.ID)
}

func TestComplaintRepository_TransitionStale(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = ? AND status = ?")).
		WithArgs("Resolved", sqlmock.AnyArg(), int64(5), "In Review").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewComplaintRepository(db).Transition(context.Background(), 5,
		model.ComplaintInReview, model.ComplaintResolved, model.Timeline{})
	assert.ErrorIs(t, err, ErrStale)
}

func TestComplaintRepository_GetByReference(t *testing.T) {
	db, mock := newMock(t, "postgres")

	ref := "6f1c2a3e-0000-4000-8000-000000000001"
	mock.ExpectQuery(regexp.QuoteMeta("FROM complaints WHERE reference = $1")).
		WithArgs(ref).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "category", "subject", "details",
			"contact_email", "status", "timeline", "created_at", "updated_at"}).
			AddRow(5, ref, "Welfare", "Hostel water", "No water since Monday", "", "Queued",
				[]byte(`[{"status":"Queued","at":"2025-09-01T09:00:00Z"}]`), t0, t0))

	c, err := NewComplaintRepository(db).GetByReference(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintQueued, c.Status)
	require.Len(t, c.Timeline, 1)
	assert.True(t, c.Timeline[0].At.Equal(t0))
}

func TestDocumentRepository_Delete(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM documents WHERE id = ?")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewDocumentRepository(db).Delete(context.Background(), 4))
}

func TestOpportunityRepository_ListOrdersByDeadline(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectQuery(regexp.QuoteMeta("FROM opportunities ORDER BY deadline ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "organization", "deadline", "link", "tags", "created_at", "updated_at"}).
			AddRow(1, "Grad scheme", "Acme", t0, "https://acme.example/jobs", nil, t0, t0))

	got, err := NewOpportunityRepository(db).List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.StringList{}, got[0].Tags)
}

func TestAdminRepository_UpdatePassword(t *testing.T) {
	db, mock := newMock(t, "mysql")

	mock.ExpectExec("UPDATE admins SET password_hash").
		WithArgs("$2a$10$hash", "sec@union.example").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewAdminRepository(db).UpdatePassword(context.Background(), "sec@union.example", "$2a$10$hash"))
}
