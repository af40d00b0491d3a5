package entity

import "time"

// DefaultLastSerial seeds the per-user receipt serial counter.
const DefaultLastSerial = 1000

// DefaultStorageURL is the attachment storage backend used when none is
// configured for a user.
const DefaultStorageURL = "local"

// User represents an operator account.
//
// Username and Code are each globally unique among all users, active or not.
// Deletion is soft: Active is cleared and the record retained, so deactivated
// users keep reserving their identifiers. LastSerial tracks the highest
// receipt number this user has issued.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Code       string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Role       string    `gorm:"size:50;not null" json:"role"`
	Branch     string    `gorm:"size:100;not null" json:"branch"`
	LastSerial int       `gorm:"default:1000" json:"lastSerial"`
	StorageURL string    `gorm:"size:200;default:'local';column:storage_url" json:"storageUrl"`
	Active     bool      `gorm:"default:true" json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
