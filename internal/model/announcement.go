package model

import "time"

// AnnouncementType 全站公告类型
type AnnouncementType string

const (
	AnnouncementUrgent      AnnouncementType = "urgent"
	AnnouncementCelebration AnnouncementType = "celebration"
	AnnouncementInfo        AnnouncementType = "info"
)

// Valid 是否为已知类型
func (t AnnouncementType) Valid() bool {
	switch t {
	case AnnouncementUrgent, AnnouncementCelebration, AnnouncementInfo:
		return true
	}
	return false
}

// AnnouncementRow global_announcements 表的行结构
type AnnouncementRow struct {
	ID        int64            `db:"id"`
	Title     string           `db:"title"`
	MessageMD string           `db:"message_md"`
	Type      AnnouncementType `db:"type"`
	IsActive  bool             `db:"is_active"`
	CreatedAt time.Time        `db:"created_at"`
	UpdatedAt time.Time        `db:"updated_at"`
}

// Announcement 全站公告，同一时间最多一条处于激活状态
type Announcement struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	MessageMD string           `json:"messageMd"`
	Type      AnnouncementType `json:"type"`
	IsActive  bool             `json:"isActive"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// ToAnnouncement 行结构转展示结构
func ToAnnouncement(r AnnouncementRow) Announcement {
	return Announcement{
		ID:        r.ID,
		Title:     r.Title,
		MessageMD: r.MessageMD,
		Type:      r.Type,
		IsActive:  r.IsActive,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToAnnouncementRow 展示结构转行结构，未知类型按 info 处理
func ToAnnouncementRow(a Announcement) AnnouncementRow {
	t := a.Type
	if !t.Valid() {
		t = AnnouncementInfo
	}
	return AnnouncementRow{
		ID:        a.ID,
		Title:     a.Title,
		MessageMD: a.MessageMD,
		Type:      t,
		IsActive:  a.IsActive,
	}
}
