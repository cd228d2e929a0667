package models

import "github.com/google/uuid"

// Password holds a bcrypt hash, never the plain text.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password string    `gorm:"type:text;not null" json:"-"`
}
