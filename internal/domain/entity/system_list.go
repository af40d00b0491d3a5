package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Known list types. The set is open-ended; these are the four seeded by
// default.
const (
	ListTypeBranches = "branches"
	ListTypeMethods  = "methods"
	ListTypeBanks    = "banks"
	ListTypeReasons  = "reasons"
)

// StringList is an ordered list of selectable values, persisted as a JSON
// text column.
type StringList []string

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal([]string(l))
}

func (l StringList) Value() (driver.Value, error) {
	data, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// SystemList is a named collection of selectable values used to populate
// selection fields. At most one row exists per list type.
type SystemList struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ListType  string     `gorm:"size:50;uniqueIndex;not null" json:"listType"`
	Items     StringList `gorm:"type:text;not null" json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TableName returns the table name for the SystemList model
func (SystemList) TableName() string {
	return "system_lists"
}

// DefaultSystemLists returns the lists seeded on first access, in seed order.
func DefaultSystemLists() []SystemList {
	return []SystemList{
		{ListType: ListTypeBranches, Items: StringList{"الرياض", "بريدة", "الخرج", "وادي الدواسر", "جدة", "تبوك"}},
		{ListType: ListTypeMethods, Items: StringList{"نقداً", "شبكة", "تحويل بنكي", "إيداع نقدي", "شيك"}},
		{ListType: ListTypeBanks, Items: StringList{"الراجحي", "الأهلي", "الرياض", "ساب", "الاستثمار"}},
		{ListType: ListTypeReasons, Items: StringList{"سداد فواتير", "دفعة من الحساب", "سداد الرصيد"}},
	}
}
