package domain

// Base carries the identity and soft-delete flag shared by every model
type Base struct {
	ID      uint `gorm:"primaryKey" json:"id"`            // Primary key
	Deleted bool `gorm:"not null;default:false" json:"-"` // Soft-delete flag, never exposed
}
