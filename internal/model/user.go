package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// RoleList is an ordered set of role tags (e.g. "Employee", "Manager", "Admin"),
// stored as a jsonb column.
type RoleList []string

func (r RoleList) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RoleList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = nil
		return nil
	default:
		return errors.New("unsupported type for RoleList")
	}
}

// User represents an account in the system
type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Username string   `gorm:"uniqueIndex;not null" json:"username"`
	Password string   `gorm:"not null" json:"-"` // Stored as hash, ignored in JSON response
	Roles    RoleList `gorm:"type:jsonb;not null" json:"roles"`
	Active   bool     `gorm:"default:true" json:"active"` // Inactive accounts cannot log in

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
