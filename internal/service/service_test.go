package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/internal/view"
	"unionsite/pkg/logger"
)

func TestAssetService_Upload(t *testing.T) {
	store := &fakeStore{url: "https://cdn.example/storage/v1/object/public/b/news/1-a.png"}
	svc := NewAssetService(store, &syncSubmitter{}, logger.NewNop())

	url, err := svc.Upload(context.Background(), "news", "a.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestAssetService_UploadFailureSurfacesNoURL(t *testing.T) {
	svc := NewAssetService(&fakeStore{err: errors.New("413 too large")}, nil, logger.NewNop())

	url, err := svc.Upload(context.Background(), "news", "a.png", "image/png", strings.NewReader("x"))
	assert.Error(t, err)
	assert.Empty(t, url)

	url, err = NewAssetService(&fakeStore{}, nil, logger.NewNop()).
		Upload(context.Background(), "events", "a.png", "image/png", strings.NewReader("x"))
	assert.Error(t, err)
	assert.Empty(t, url)
}

func TestAssetService_RejectsUnknownFolder(t *testing.T) {
	svc := NewAssetService(&fakeStore{url: "u"}, nil, logger.NewNop())
	_, err := svc.Upload(context.Background(), "../secrets", "a.png", "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidFolder)
}

func TestAssetService_Delete(t *testing.T) {
	store := &fakeStore{}
	svc := NewAssetService(store, nil, logger.NewNop())
	assert.True(t, svc.Delete(context.Background(), "https://cdn.example/x.png"))
	assert.False(t, svc.Delete(context.Background(), ""))

	store.deleteErr = errors.New("url does not belong to this bucket")
	assert.False(t, svc.Delete(context.Background(), "https://elsewhere/x.png"))
}

func TestNewsService_DeleteQueuesCoverCleanup(t *testing.T) {
	store := &fakeStore{}
	worker := &syncSubmitter{}
	repo := &fakeNews{items: map[int64]*model.News{
		1: {ID: 1, Title: "Fees", CoverURL: "https://cdn.example/news/1-fees.png"},
	}}
	svc := NewNewsService(repo, NewAssetService(store, worker, logger.NewNop()), logger.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []string{"delete_asset"}, worker.names)
	assert.Equal(t, []string{"https://cdn.example/news/1-fees.png"}, store.deleted)
}

func TestNewsService_UpdateKeepsCoverWhenUnchanged(t *testing.T) {
	store := &fakeStore{}
	published := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeNews{items: map[int64]*model.News{
		1: {ID: 1, Slug: "fees", Title: "Fees", CoverURL: "c.png", IsPublished: true, PublishedAt: &published},
	}}
	svc := NewNewsService(repo, NewAssetService(store, &syncSubmitter{}, logger.NewNop()), logger.NewNop())

	require.NoError(t, svc.Update(context.Background(), &model.News{ID: 1, Title: "Fees v2", CoverURL: "c.png", IsPublished: true}))
	assert.Empty(t, store.deleted)
	assert.Equal(t, "fees", repo.items[1].Slug)
	assert.Equal(t, &published, repo.items[1].PublishedAt)

	require.NoError(t, svc.Update(context.Background(), &model.News{ID: 1, Title: "Fees v3", CoverURL: "d.png"}))
	assert.Equal(t, []string{"c.png"}, store.deleted)
}

func TestNewsService_CreateSlug(t *testing.T) {
	repo := &fakeNews{items: map[int64]*model.News{}}
	svc := NewNewsService(repo, nil, logger.NewNop())

	n := &model.News{Title: "Freshers' Week 2025!"}
	require.NoError(t, svc.Create(context.Background(), n))
	assert.Equal(t, "freshers-week-2025", n.Slug)

	cn := &model.News{Title: "迎新周"}
	require.NoError(t, svc.Create(context.Background(), cn))
	assert.True(t, strings.HasPrefix(cn.Slug, "news-"))
}

func newRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb, mr
}

func TestAnnouncementService_ActivateLeavesExactlyOne(t *testing.T) {
	rdb, mr := newRedis(t)
	repo := newFakeAnnouncements(
		model.Announcement{ID: 1, Title: "Old", IsActive: true},
		model.Announcement{ID: 2, Title: "New"},
		model.Announcement{ID: 3, Title: "Other"},
	)
	svc := NewAnnouncementService(repo, rdb, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.Activate(ctx, 2))
	assert.Equal(t, 1, repo.activeCount())
	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), active.ID)
	assert.False(t, mr.Exists(announcementLockKey))

	a := &model.Announcement{Title: "Urgent", IsActive: true}
	require.NoError(t, svc.Create(ctx, a))
	assert.True(t, a.IsActive)
	assert.Equal(t, 1, repo.activeCount())
	active, _ = svc.Active(ctx)
	assert.Equal(t, a.ID, active.ID)
}

func TestAnnouncementService_ActivateBusy(t *testing.T) {
	rdb, mr := newRedis(t)
	repo := newFakeAnnouncements(model.Announcement{ID: 1})
	svc := NewAnnouncementService(repo, rdb, logger.NewNop())

	require.NoError(t, mr.Set(announcementLockKey, "9"))
	assert.ErrorIs(t, svc.Activate(context.Background(), 1), ErrBusy)
	assert.Equal(t, 0, repo.activeCount())
}

func TestAnnouncementService_CreateActiveBusyLeavesNoRow(t *testing.T) {
	rdb, mr := newRedis(t)
	repo := newFakeAnnouncements(model.Announcement{ID: 1, Title: "Old", IsActive: true})
	svc := NewAnnouncementService(repo, rdb, logger.NewNop())

	require.NoError(t, mr.Set(announcementLockKey, "9"))
	err := svc.Create(context.Background(), &model.Announcement{Title: "Urgent", IsActive: true})
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, 1, repo.count())

	active, err := svc.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), active.ID)
}

func TestAnnouncementService_ActiveNoneIsNotError(t *testing.T) {
	rdb, _ := newRedis(t)
	svc := NewAnnouncementService(newFakeAnnouncements(), rdb, logger.NewNop())

	a, err := svc.Active(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, a)
}

func newComplaintService() (*ComplaintService, *fakeComplaints, *fakeMailer) {
	repo := newFakeComplaints()
	mailer := &fakeMailer{}
	svc := NewComplaintService(repo, mailer, &syncSubmitter{}, logger.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC) }
	return svc, repo, mailer
}

func TestComplaintService_Submit(t *testing.T) {
	svc, _, mailer := newComplaintService()

	c, err := svc.Submit(context.Background(), "Welfare", "Hostel water", "No water", " me@uni.example ")
	require.NoError(t, err)
	_, err = uuid.Parse(c.Reference)
	assert.NoError(t, err)
	assert.Equal(t, model.ComplaintQueued, c.Status)
	require.Len(t, c.Timeline, 1)
	assert.Equal(t, model.ComplaintQueued, c.Timeline[0].Status)
	assert.Equal(t, []string{"me@uni.example|Queued"}, mailer.receipts)

	public, err := svc.GetByReference(context.Background(), c.Reference)
	require.NoError(t, err)
	assert.Empty(t, public.ContactEmail)
}

func TestComplaintService_TransitionAppendsOneEntry(t *testing.T) {
	svc, repo, _ := newComplaintService()
	ctx := context.Background()
	c, err := svc.Submit(ctx, "Academic", "Grades", "Late results", "")
	require.NoError(t, err)

	c, err = svc.Transition(ctx, c.ID, model.ComplaintInReview, "assigned to welfare officer")
	require.NoError(t, err)
	assert.Len(t, c.Timeline, 2)

	c, err = svc.Transition(ctx, c.ID, model.ComplaintResolved, "")
	require.NoError(t, err)
	require.Len(t, c.Timeline, 3)
	assert.Equal(t, model.ComplaintResolved, c.Timeline[2].Status)
	assert.Equal(t, 2, repo.transitions)

	_, err = svc.Transition(ctx, c.ID, model.ComplaintClosed, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 2, repo.transitions)
	assert.Len(t, repo.items[c.ID].Timeline, 3)
}

func TestComplaintService_RejectsSkippingReview(t *testing.T) {
	svc, _, _ := newComplaintService()
	c, err := svc.Submit(context.Background(), "Academic", "Grades", "Late", "")
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), c.ID, model.ComplaintResolved, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestComplaintService_GetByReferenceMalformed(t *testing.T) {
	svc, _, _ := newComplaintService()
	_, err := svc.GetByReference(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEventService_ListUpcomingUsesNow(t *testing.T) {
	repo := &fakeEvents{}
	svc := NewEventService(repo, nil, logger.NewNop())
	now := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.List(context.Background(), "Sports", true)
	require.NoError(t, err)
	assert.Equal(t, repository.EventFilter{Category: "Sports", EndsAfter: now}, repo.filter)

	_, err = svc.List(context.Background(), "", false)
	require.NoError(t, err)
	assert.True(t, repo.filter.EndsAfter.IsZero())
}

func TestHomeService_ComponentsResolveIndependently(t *testing.T) {
	rdb, _ := newRedis(t)
	log := logger.NewNop()

	announcements := NewAnnouncementService(newFakeAnnouncements(model.Announcement{ID: 1, IsActive: true}), rdb, log)
	spotlightRepo := &fakeSpotlights{err: errDown}
	newsRepo := &fakeNews{items: map[int64]*model.News{}}
	eventRepo := &fakeEvents{items: []model.Event{{ID: 1}, {ID: 2}}}

	home := NewHomeService(announcements,
		NewSpotlightService(spotlightRepo, nil, log),
		NewNewsService(newsRepo, nil, log),
		NewEventService(eventRepo, nil, log))

	page := home.Load(context.Background())
	assert.Equal(t, view.Success, page.Announcement.State())
	assert.Equal(t, view.Error, page.Spotlights.State())
	assert.Equal(t, view.Empty, page.News.State())
	assert.Equal(t, view.Success, page.Events.State())
	assert.Len(t, page.Events.Items(), 2)

	assert.Equal(t, 1, spotlightRepo.calls)
	assert.Equal(t, 1, newsRepo.calls)
	assert.Equal(t, 1, eventRepo.calls)
}
