package model

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList 以JSON文本存储的字符串数组，例如标签
type StringList []string

// Scan 实现 sql.Scanner
func (l *StringList) Scan(src interface{}) error {
	*l = StringList{}
	return scanJSON(src, l)
}

// Value 实现 driver.Valuer，以字符串写入以兼容 MySQL JSON 与 Postgres JSONB
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return valueJSON(l)
}

// Contains 是否包含指定标签
func (l StringList) Contains(tag string) bool {
	for _, t := range l {
		if t == tag {
			return true
		}
	}
	return false
}

// Contacts 干部的联系方式
type Contacts struct {
	Email   string            `json:"email,omitempty"`
	Phone   string            `json:"phone,omitempty"`
	Socials map[string]string `json:"socials,omitempty"`
}

// Scan 实现 sql.Scanner
func (c *Contacts) Scan(src interface{}) error {
	*c = Contacts{}
	return scanJSON(src, c)
}

// Value 实现 driver.Valuer
func (c Contacts) Value() (driver.Value, error) {
	return valueJSON(c)
}

func scanJSON(src interface{}, dst interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func valueJSON(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nonNil(l StringList) StringList {
	if l == nil {
		return StringList{}
	}
	return l
}
