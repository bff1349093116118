package model

import (
	"fmt"
	"strings"
	"time"
)

// DocumentRow documents 表的行结构
type DocumentRow struct {
	ID        int64      `db:"id"`
	Title     string     `db:"title"`
	URL       string     `db:"url"`
	Tags      StringList `db:"tags"`
	FileType  string     `db:"file_type"`
	FileSize  int64      `db:"file_size"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// Document 公开文件，例如章程、会议纪要
type Document struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Tags      StringList `json:"tags"`
	FileType  string     `json:"fileType"`
	FileSize  int64      `json:"fileSize"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// SizeLabel 文件大小的可读形式
func (d Document) SizeLabel() string {
	return FormatFileSize(d.FileSize)
}

// FormatFileSize 将字节数格式化为 B/KB/MB/GB
func FormatFileSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit && exp < 2; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMG"[exp])
}

// ToDocument 行结构转展示结构
func ToDocument(r DocumentRow) Document {
	return Document{
		ID:        r.ID,
		Title:     r.Title,
		URL:       r.URL,
		Tags:      nonNil(r.Tags),
		FileType:  r.FileType,
		FileSize:  r.FileSize,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToDocumentRow 展示结构转行结构，文件类型统一为小写
func ToDocumentRow(d Document) DocumentRow {
	return DocumentRow{
		ID:       d.ID,
		Title:    d.Title,
		URL:      d.URL,
		Tags:     nonNil(d.Tags),
		FileType: strings.ToLower(strings.TrimPrefix(d.FileType, ".")),
		FileSize: d.FileSize,
	}
}
