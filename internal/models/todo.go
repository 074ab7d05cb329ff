package models

import (
	"time"
)

type TodoState string

const (
	TodoStateDraft TodoState = "draft"
	TodoStateTodo  TodoState = "todo"
	TodoStateDoing TodoState = "doing"
	TodoStateDone  TodoState = "done"
	TodoStateTrash TodoState = "trash"
)

// Valid reports whether s is one of the known todo states. There is no
// enforced transition order; any state may be set to any other.
func (s TodoState) Valid() bool {
	switch s {
	case TodoStateDraft, TodoStateTodo, TodoStateDoing, TodoStateDone, TodoStateTrash:
		return true
	}
	return false
}

type Todo struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	State       TodoState `gorm:"type:varchar(20);not null" json:"state"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
