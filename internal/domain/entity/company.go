package entity

import "time"

// DefaultCompanyName is used when the company record is created lazily on
// first read.
const DefaultCompanyName = "شركة الأسمدة المتحدة السعودية"

// Company is the singleton record holding organization branding. Logo, header
// and footer are opaque encoded image blobs printed on receipt documents.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Logo      string    `gorm:"type:text" json:"logo"`
	Header    string    `gorm:"type:text" json:"header"`
	Footer    string    `gorm:"type:text" json:"footer"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "company"
}
