package model

import "time"

// EventRow events 表的行结构
type EventRow struct {
	ID            int64     `db:"id"`
	Slug          string    `db:"slug"`
	Title         string    `db:"title"`
	DescriptionMD string    `db:"description_md"`
	StartAt       time.Time `db:"start_at"`
	EndAt         time.Time `db:"end_at"`
	Venue         string    `db:"venue"`
	Category      string    `db:"category"`
	CoverURL      string    `db:"cover_url"`
	RSVPOpen      bool      `db:"rsvp_open"`
	RSVPLink      string    `db:"rsvp_link"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Event 活动
type Event struct {
	ID            int64     `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	DescriptionMD string    `json:"descriptionMd"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	Venue         string    `json:"venue"`
	Category      string    `json:"category"`
	CoverURL      string    `json:"coverUrl"`
	RSVPOpen      bool      `json:"rsvpOpen"`
	RSVPLink      string    `json:"rsvpLink"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Upcoming 活动是否尚未结束
func (e Event) Upcoming(now time.Time) bool {
	return e.EndAt.After(now)
}

// ToEvent 行结构转展示结构
func ToEvent(r EventRow) Event {
	return Event{
		ID:            r.ID,
		Slug:          r.Slug,
		Title:         r.Title,
		DescriptionMD: r.DescriptionMD,
		StartAt:       r.StartAt,
		EndAt:         r.EndAt,
		Venue:         r.Venue,
		Category:      r.Category,
		CoverURL:      r.CoverURL,
		RSVPOpen:      r.RSVPOpen,
		RSVPLink:      r.RSVPLink,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToEventRow 展示结构转行结构，报名关闭时不保留报名链接
func ToEventRow(e Event) EventRow {
	link := e.RSVPLink
	if !e.RSVPOpen {
		link = ""
	}
	return EventRow{
		ID:            e.ID,
		Slug:          e.Slug,
		Title:         e.Title,
		DescriptionMD: e.DescriptionMD,
		StartAt:       e.StartAt,
		EndAt:         e.EndAt,
		Venue:         e.Venue,
		Category:      e.Category,
		CoverURL:      e.CoverURL,
		RSVPOpen:      e.RSVPOpen,
		RSVPLink:      link,
	}
}
