package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"unionsite/internal/model"
	"unionsite/internal/repository"
)

type syncSubmitter struct {
	mu    sync.Mutex
	names []string
}

func (s *syncSubmitter) Submit(name string, handler func(ctx context.Context) error) bool {
	s.mu.Lock()
	s.names = append(s.names, name)
	s.mu.Unlock()
	_ = handler(context.Background())
	return true
}

type fakeStore struct {
	url       string
	err       error
	deleted   []string
	deleteErr error
}

func (f *fakeStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func (f *fakeStore) Delete(ctx context.Context, publicURL string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, publicURL)
	return nil
}

type fakeAnnouncements struct {
	mu    sync.Mutex
	items map[int64]*model.Announcement
	next  int64
}

func newFakeAnnouncements(items ...model.Announcement) *fakeAnnouncements {
	f := &fakeAnnouncements{items: map[int64]*model.Announcement{}}
	for i := range items {
		a := items[i]
		f.items[a.ID] = &a
		if a.ID > f.next {
			f.next = a.ID
		}
	}
	return f
}

func (f *fakeAnnouncements) List(ctx context.Context) ([]model.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Announcement
	for _, a := range f.items {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAnnouncements) GetByID(ctx context.Context, id int64) (*model.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAnnouncements) Active(ctx context.Context) (*model.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.items {
		if a.IsActive {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAnnouncements) Create(ctx context.Context, a *model.Announcement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	a.ID = f.next
	a.IsActive = false
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeAnnouncements) CreateActive(ctx context.Context, a *model.Announcement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, old := range f.items {
		old.IsActive = false
	}
	f.next++
	a.ID = f.next
	a.IsActive = true
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeAnnouncements) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *fakeAnnouncements) Update(ctx context.Context, a *model.Announcement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	old, ok := f.items[a.ID]
	if !ok {
		return repository.ErrNotFound
	}
	old.Title, old.MessageMD, old.Type = a.Title, a.MessageMD, a.Type
	return nil
}

func (f *fakeAnnouncements) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

func (f *fakeAnnouncements) Activate(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	target, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	for _, a := range f.items {
		a.IsActive = false
	}
	target.IsActive = true
	return nil
}

func (f *fakeAnnouncements) Deactivate(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.items[id]; ok {
		a.IsActive = false
	}
	return nil
}

func (f *fakeAnnouncements) activeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.items {
		if a.IsActive {
			n++
		}
	}
	return n
}

type fakeComplaints struct {
	items       map[int64]*model.Complaint
	next        int64
	transitions int
}

func newFakeComplaints() *fakeComplaints {
	return &fakeComplaints{items: map[int64]*model.Complaint{}}
}

func (f *fakeComplaints) List(ctx context.Context, status model.ComplaintStatus) ([]model.Complaint, error) {
	var out []model.Complaint
	for _, c := range f.items {
		if status == "" || c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeComplaints) GetByID(ctx context.Context, id int64) (*model.Complaint, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeComplaints) GetByReference(ctx context.Context, reference string) (*model.Complaint, error) {
	for _, c := range f.items {
		if c.Reference == reference {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeComplaints) Create(ctx context.Context, c *model.Complaint) error {
	f.next++
	c.ID = f.next
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeComplaints) Transition(ctx context.Context, id int64, from, to model.ComplaintStatus, timeline model.Timeline) error {
	f.transitions++
	c, ok := f.items[id]
	if !ok || c.Status != from {
		return repository.ErrStale
	}
	c.Status = to
	c.Timeline = timeline
	return nil
}

func (f *fakeComplaints) Delete(ctx context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

type fakeMailer struct {
	receipts []string
}

func (m *fakeMailer) SendComplaintReceipt(to, topic, reference, status string) error {
	m.receipts = append(m.receipts, to+"|"+status)
	return nil
}

type fakeNews struct {
	items   map[int64]*model.News
	listErr error
	calls   int
}

func (f *fakeNews) List(ctx context.Context, filter repository.NewsFilter) ([]model.News, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.News
	for _, n := range f.items {
		out = append(out, *n)
	}
	return out, nil
}

func (f *fakeNews) GetByID(ctx context.Context, id int64) (*model.News, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNews) GetBySlug(ctx context.Context, slug string) (*model.News, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeNews) Create(ctx context.Context, n *model.News) error {
	n.ID = int64(len(f.items) + 1)
	cp := *n
	f.items[n.ID] = &cp
	return nil
}

func (f *fakeNews) Update(ctx context.Context, n *model.News) error {
	if _, ok := f.items[n.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *n
	f.items[n.ID] = &cp
	return nil
}

func (f *fakeNews) Delete(ctx context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

type fakeSpotlights struct {
	items []model.Spotlight
	err   error
	calls int
}

func (f *fakeSpotlights) List(ctx context.Context, activeOnly bool) ([]model.Spotlight, error) {
	f.calls++
	return f.items, f.err
}
func (f *fakeSpotlights) GetByID(ctx context.Context, id int64) (*model.Spotlight, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeSpotlights) Create(ctx context.Context, s *model.Spotlight) error { return nil }
func (f *fakeSpotlights) Update(ctx context.Context, s *model.Spotlight) error { return nil }
func (f *fakeSpotlights) Delete(ctx context.Context, id int64) error           { return nil }

type fakeEvents struct {
	items  []model.Event
	err    error
	filter repository.EventFilter
	calls  int
}

func (f *fakeEvents) List(ctx context.Context, filter repository.EventFilter) ([]model.Event, error) {
	f.calls++
	f.filter = filter
	return f.items, f.err
}
func (f *fakeEvents) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeEvents) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeEvents) Create(ctx context.Context, e *model.Event) error { return nil }
func (f *fakeEvents) Update(ctx context.Context, e *model.Event) error { return nil }
func (f *fakeEvents) Delete(ctx context.Context, id int64) error       { return nil }

var errDown = errors.New("connection refused")
