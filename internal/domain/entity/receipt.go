package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// InvoiceList is an ordered list of invoice references, persisted as a JSON
// text column. Entries are stored verbatim: the reference shape belongs to
// the frontend and is not interpreted server side.
type InvoiceList []map[string]interface{}

func (l InvoiceList) MarshalJSON() ([]byte, error) {
	if l == nil {
		l = InvoiceList{}
	}
	return json.Marshal([]map[string]interface{}(l))
}

func (l InvoiceList) Value() (driver.Value, error) {
	data, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *InvoiceList) Scan(value interface{}) error {
	if value == nil {
		*l = InvoiceList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into InvoiceList", value)
	}
	if len(data) == 0 {
		*l = InvoiceList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Receipt is one recorded cash or bank payment against a client.
//
// Number is chosen by the caller and is globally unique. BankAmount is the
// amount actually settled at the bank; it defaults to Amount when not
// supplied. ApprovedBy and ApprovedAt are stamped together with Approved by
// the approval transition.
type Receipt struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Number     int         `gorm:"uniqueIndex;not null" json:"number"`
	ClientID   string      `gorm:"size:50;column:client_id" json:"clientId"`
	ClientName string      `gorm:"size:200;not null" json:"clientName"`
	Amount     float64     `gorm:"not null" json:"amount"`
	BankAmount *float64    `json:"bankAmount"`
	Tafqeet    string      `gorm:"type:text" json:"tafqeet"`
	Method     string      `gorm:"size:100;not null" json:"method"`
	Bank       string      `gorm:"size:100;not null" json:"bank"`
	Reason     string      `gorm:"size:200;not null" json:"reason"`
	Branch     string      `gorm:"size:100;not null;index" json:"branch"`
	Invoices   InvoiceList `gorm:"type:text" json:"invoices"`
	CreatedBy  string      `gorm:"size:100;not null;index" json:"createdBy"`
	Date       Date        `gorm:"size:10;not null;index" json:"date"`
	Attachment string      `gorm:"type:text" json:"attachment"`
	Approved   bool        `gorm:"default:false" json:"approved"`
	ApprovedBy *string     `gorm:"size:100" json:"approvedBy"`
	ApprovedAt *time.Time  `json:"approvedAt"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}
