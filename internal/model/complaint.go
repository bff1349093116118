package model

import (
	"database/sql/driver"
	"time"
)

// ComplaintStatus 投诉处理状态
type ComplaintStatus string

const (
	ComplaintQueued   ComplaintStatus = "Queued"
	ComplaintInReview ComplaintStatus = "In Review"
	ComplaintResolved ComplaintStatus = "Resolved"
	ComplaintClosed   ComplaintStatus = "Closed"
)

// 允许的状态流转，Resolved 与 Closed 为终态
var complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintQueued:   {ComplaintInReview, ComplaintClosed},
	ComplaintInReview: {ComplaintResolved, ComplaintClosed},
}

// CanTransition 是否允许从当前状态流转到 next
func (s ComplaintStatus) CanTransition(next ComplaintStatus) bool {
	for _, allowed := range complaintTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal 是否为终态
func (s ComplaintStatus) Terminal() bool {
	return s == ComplaintResolved || s == ComplaintClosed
}

// TimelineEntry 投诉处理记录
type TimelineEntry struct {
	Status ComplaintStatus `json:"status"`
	Note   string          `json:"note,omitempty"`
	At     time.Time       `json:"at"`
}

// Timeline 只追加的处理记录
type Timeline []TimelineEntry

// Scan 实现 sql.Scanner
func (t *Timeline) Scan(src interface{}) error {
	*t = Timeline{}
	return scanJSON(src, t)
}

// Value 实现 driver.Valuer
func (t Timeline) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return valueJSON(t)
}

// Append 返回追加一条记录后的新切片，不修改原切片
func (t Timeline) Append(entry TimelineEntry) Timeline {
	out := make(Timeline, len(t), len(t)+1)
	copy(out, t)
	return append(out, entry)
}

// ComplaintRow complaints 表的行结构
type ComplaintRow struct {
	ID           int64           `db:"id"`
	Reference    string          `db:"reference"`
	Category     string          `db:"category"`
	Subject      string          `db:"subject"`
	Details      string          `db:"details"`
	ContactEmail string          `db:"contact_email"`
	Status       ComplaintStatus `db:"status"`
	Timeline     Timeline        `db:"timeline"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// Complaint 学生投诉
type Complaint struct {
	ID           int64           `json:"id"`
	Reference    string          `json:"reference"`
	Category     string          `json:"category"`
	Subject      string          `json:"subject"`
	Details      string          `json:"details"`
	ContactEmail string          `json:"contactEmail,omitempty"`
	Status       ComplaintStatus `json:"status"`
	Timeline     Timeline        `json:"timeline"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Public 去掉联系方式后的公开视图，用于按编号查询
func (c Complaint) Public() Complaint {
	c.ContactEmail = ""
	return c
}

// ToComplaint 行结构转展示结构
func ToComplaint(r ComplaintRow) Complaint {
	timeline := r.Timeline
	if timeline == nil {
		timeline = Timeline{}
	}
	return Complaint{
		ID:           r.ID,
		Reference:    r.Reference,
		Category:     r.Category,
		Subject:      r.Subject,
		Details:      r.Details,
		ContactEmail: r.ContactEmail,
		Status:       r.Status,
		Timeline:     timeline,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToComplaintRow 展示结构转行结构
func ToComplaintRow(c Complaint) ComplaintRow {
	return ComplaintRow{
		ID:           c.ID,
		Reference:    c.Reference,
		Category:     c.Category,
		Subject:      c.Subject,
		Details:      c.Details,
		ContactEmail: c.ContactEmail,
		Status:       c.Status,
		Timeline:     c.Timeline,
	}
}
