package model

import "time"

// OpportunityRow opportunities 表的行结构
type OpportunityRow struct {
	ID           int64      `db:"id"`
	Title        string     `db:"title"`
	Organization string     `db:"organization"`
	Deadline     time.Time  `db:"deadline"`
	Link         string     `db:"link"`
	Tags         StringList `db:"tags"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// Opportunity 实习、奖学金等机会
type Opportunity struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Organization string     `json:"organization"`
	Deadline     time.Time  `json:"deadline"`
	Link         string     `json:"link"`
	Tags         StringList `json:"tags"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Expired 截止时间是否已过，仅用于展示
func (o Opportunity) Expired(now time.Time) bool {
	return now.After(o.Deadline)
}

// ToOpportunity 行结构转展示结构
func ToOpportunity(r OpportunityRow) Opportunity {
	return Opportunity{
		ID:           r.ID,
		Title:        r.Title,
		Organization: r.Organization,
		Deadline:     r.Deadline,
		Link:         r.Link,
		Tags:         nonNil(r.Tags),
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToOpportunityRow 展示结构转行结构
func ToOpportunityRow(o Opportunity) OpportunityRow {
	return OpportunityRow{
		ID:           o.ID,
		Title:        o.Title,
		Organization: o.Organization,
		Deadline:     o.Deadline,
		Link:         o.Link,
		Tags:         nonNil(o.Tags),
	}
}
