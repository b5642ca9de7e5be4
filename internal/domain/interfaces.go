package domain

import (
	"context"
	"time"

	"github.com/JordanPiper315/techNotesBackend/internal/model"
)

// ===========================
// Persistence ports
// ===========================

// Absence is a normal outcome for every lookup here (duplicate checks,
// existence checks), so FindBy* methods return (nil, nil) when no record
// matches and reserve the error for store failures.

// UserRepository is the persistence port for user records.
type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, user *model.User) error
}

// NoteRepository is the persistence port for note records.
type NoteRepository interface {
	FindAll(ctx context.Context) ([]model.Note, error)
	FindByID(ctx context.Context, id uint) (*model.Note, error)
	FindByTitle(ctx context.Context, title string) (*model.Note, error)
	// FindByUserID returns any one note assigned to the user, used by the
	// user-deletion guard.
	FindByUserID(ctx context.Context, userID uint) (*model.Note, error)
	Create(ctx context.Context, note *model.Note) error
	Save(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, note *model.Note) error
}

// ===========================
// Note service interface
// ===========================

// NoteService defines the note resource operations
type NoteService interface {
	// List all notes, each joined with its owner's username
	ListNotes(ctx context.Context) ([]model.NoteView, error)
	// Create a note, rejecting duplicate titles
	CreateNote(ctx context.Context, userID uint, title, text string) (*model.Note, error)
	// Overwrite user/title/text/completed of an existing note
	UpdateNote(ctx context.Context, id, userID uint, title, text string, completed bool) (*model.Note, error)
	// Delete a note unconditionally, returning the deleted record
	DeleteNote(ctx context.Context, id uint) (*model.Note, error)
}

// ===========================
// User service interface
// ===========================

// UserService defines the user resource operations
type UserService interface {
	// List all users (password digests never leave the model's json mapping)
	ListUsers(ctx context.Context) ([]model.User, error)
	// Create a user with a hashed password, rejecting duplicate usernames
	CreateUser(ctx context.Context, username, password string, roles model.RoleList) (*model.User, error)
	// Update username/roles/active; password is re-hashed only when non-empty
	UpdateUser(ctx context.Context, id uint, username string, roles model.RoleList, active bool, password string) (*model.User, error)
	// Delete a user, refused while any note still references them
	DeleteUser(ctx context.Context, id uint) (*model.User, error)
}

// ===========================
// Auth
// ===========================

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService defines login and token lifecycle operations
type AuthService interface {
	Login(ctx context.Context, username, password string) (*TokenPair, *model.User, error)
	// Refresh rotates the refresh token: the presented one is revoked and a
	// fresh pair is issued
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout revokes the presented refresh token until its natural expiry
	Logout(ctx context.Context, refreshToken string) error
}

// TokenStore records revoked refresh tokens until they expire on their own.
type TokenStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
