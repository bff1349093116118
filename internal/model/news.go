package model

import (
	"database/sql"
	"time"
)

// NewsRow news 表的行结构
type NewsRow struct {
	ID          int64        `db:"id"`
	Slug        string       `db:"slug"`
	Title       string       `db:"title"`
	Excerpt     string       `db:"excerpt"`
	BodyMD      string       `db:"body_md"`
	Tags        StringList   `db:"tags"`
	CoverURL    string       `db:"cover_url"`
	IsPublished bool         `db:"is_published"`
	PublishedAt sql.NullTime `db:"published_at"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

// News 新闻
type News struct {
	ID          int64      `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	BodyMD      string     `json:"bodyMd"`
	Tags        StringList `json:"tags"`
	CoverURL    string     `json:"coverUrl"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ToNews 行结构转展示结构
func ToNews(r NewsRow) News {
	return News{
		ID:          r.ID,
		Slug:        r.Slug,
		Title:       r.Title,
		Excerpt:     r.Excerpt,
		BodyMD:      r.BodyMD,
		Tags:        nonNil(r.Tags),
		CoverURL:    r.CoverURL,
		IsPublished: r.IsPublished,
		PublishedAt: timePtr(r.PublishedAt),
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToNewsRow 展示结构转行结构，发布但未指定时间时使用 now
func ToNewsRow(n News, now time.Time) NewsRow {
	publishedAt := nullTime(n.PublishedAt)
	if n.IsPublished && !publishedAt.Valid {
		publishedAt = sql.NullTime{Time: now, Valid: true}
	}
	return NewsRow{
		ID:          n.ID,
		Slug:        n.Slug,
		Title:       n.Title,
		Excerpt:     n.Excerpt,
		BodyMD:      n.BodyMD,
		Tags:        nonNil(n.Tags),
		CoverURL:    n.CoverURL,
		IsPublished: n.IsPublished,
		PublishedAt: publishedAt,
	}
}
