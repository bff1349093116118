package model

import "time"

// SpotlightRow spotlights 表的行结构，首页轮播卡片
type SpotlightRow struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Caption      string    `db:"caption"`
	ImageURL     string    `db:"image_url"`
	LinkURL      string    `db:"link_url"`
	DisplayOrder int       `db:"display_order"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Spotlight 首页轮播卡片
type Spotlight struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Caption      string    `json:"caption"`
	ImageURL     string    `json:"imageUrl"`
	LinkURL      string    `json:"linkUrl"`
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToSpotlight 行结构转展示结构
func ToSpotlight(r SpotlightRow) Spotlight {
	return Spotlight{
		ID:           r.ID,
		Title:        r.Title,
		Caption:      r.Caption,
		ImageURL:     r.ImageURL,
		LinkURL:      r.LinkURL,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToSpotlightRow 展示结构转行结构
func ToSpotlightRow(s Spotlight) SpotlightRow {
	return SpotlightRow{
		ID:           s.ID,
		Title:        s.Title,
		Caption:      s.Caption,
		ImageURL:     s.ImageURL,
		LinkURL:      s.LinkURL,
		DisplayOrder: s.DisplayOrder,
		IsActive:     s.IsActive,
	}
}
