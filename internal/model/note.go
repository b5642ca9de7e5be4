package model

import "time"

// Note represents a tech note ticket assigned to a user.
// UserID is a lookup association, not an ownership relation: deleting the
// referenced user does not cascade to the note.
type Note struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index;not null" json:"user"`
	Title     string `gorm:"uniqueIndex;not null" json:"title"`
	Text      string `gorm:"not null" json:"text"`
	Completed bool   `gorm:"default:false" json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteView is a Note joined with the owning user's username for list
// responses. Username is empty (and omitted) when the referenced user no
// longer exists.
type NoteView struct {
	Note
	Username string `json:"username,omitempty"`
}
