package model

import (
	"database/sql"
	"time"
)

// ExecutiveRow executives 表的行结构
type ExecutiveRow struct {
	ID           int64        `db:"id"`
	Slug         string       `db:"slug"`
	Name         string       `db:"name"`
	Role         string       `db:"role"`
	Faculty      string       `db:"faculty"`
	Tier         string       `db:"tier"`
	TenureStart  time.Time    `db:"tenure_start"`
	TenureEnd    sql.NullTime `db:"tenure_end"`
	Contacts     Contacts     `db:"contacts"`
	PhotoURL     string       `db:"photo_url"`
	DisplayOrder int          `db:"display_order"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

// Executive 学生会干部
type Executive struct {
	ID           int64      `json:"id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Faculty      string     `json:"faculty"`
	Tier         string     `json:"tier"`
	TenureStart  time.Time  `json:"tenureStart"`
	TenureEnd    *time.Time `json:"tenureEnd,omitempty"`
	Contacts     Contacts   `json:"contacts"`
	PhotoURL     string     `json:"photoUrl"`
	DisplayOrder int        `json:"displayOrder"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// TenureLabel 任期展示文本，例如 "2025 - 2026" 或 "2025 - 至今"
func (e Executive) TenureLabel() string {
	end := "至今"
	if e.TenureEnd != nil {
		end = e.TenureEnd.Format("2006")
	}
	return e.TenureStart.Format("2006") + " - " + end
}

// ToExecutive 行结构转展示结构
func ToExecutive(r ExecutiveRow) Executive {
	return Executive{
		ID:           r.ID,
		Slug:         r.Slug,
		Name:         r.Name,
		Role:         r.Role,
		Faculty:      r.Faculty,
		Tier:         r.Tier,
		TenureStart:  r.TenureStart,
		TenureEnd:    timePtr(r.TenureEnd),
		Contacts:     r.Contacts,
		PhotoURL:     r.PhotoURL,
		DisplayOrder: r.DisplayOrder,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToExecutiveRow 展示结构转行结构
func ToExecutiveRow(e Executive) ExecutiveRow {
	return ExecutiveRow{
		ID:           e.ID,
		Slug:         e.Slug,
		Name:         e.Name,
		Role:         e.Role,
		Faculty:      e.Faculty,
		Tier:         e.Tier,
		TenureStart:  e.TenureStart,
		TenureEnd:    nullTime(e.TenureEnd),
		Contacts:     e.Contacts,
		PhotoURL:     e.PhotoURL,
		DisplayOrder: e.DisplayOrder,
	}
}
