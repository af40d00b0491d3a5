package entity

import "time"

// Client represents a party receipts can be attributed to. ClientID is the
// business identifier shown on documents, distinct from the internal ID.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  string    `gorm:"size:50;uniqueIndex;not null;column:client_id" json:"clientId"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Email     string    `gorm:"size:100" json:"email"`
	Address   string    `gorm:"type:text" json:"address"`
	Branch    string    `gorm:"size:100" json:"branch"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
