package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/JordanPiper315/techNotesBackend/internal/domain"
	"github.com/JordanPiper315/techNotesBackend/internal/model"
)

// UserServiceImpl implements the domain.UserService interface
type UserServiceImpl struct {
	users domain.UserRepository
	notes domain.NoteRepository
}

func NewUserService(users domain.UserRepository, notes domain.NoteRepository) *UserServiceImpl {
	return &UserServiceImpl{users: users, notes: notes}
}

// ListUsers returns all users. Password digests stay out of responses via
// the model's json mapping.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch users", err)
	}
	if len(users) == 0 {
		return nil, domain.NewNotFoundError("No users found")
	}
	return users, nil
}

// CreateUser stores a new user with a bcrypt-hashed password after checking
// the username is unused.
func (s *UserServiceImpl) CreateUser(ctx context.Context, username, password string, roles model.RoleList) (*model.User, error) {
	duplicate, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to check username", err)
	}
	if duplicate != nil {
		return nil, domain.NewConflictError("Duplicate username")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to hash password", err)
	}

	user := model.User{
		Username: username,
		Password: string(hashed),
		Roles:    roles,
		Active:   true,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, domain.NewPersistenceError("Invalid user data received", err)
	}
	return &user, nil
}

// UpdateUser overwrites username/roles/active of an existing user. The
// password is optional: when non-empty it is re-hashed and replaced, when
// empty the stored digest is kept.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint, username string, roles model.RoleList, active bool, password string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	duplicate, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to check username", err)
	}
	if duplicate != nil && duplicate.ID != id {
		return nil, domain.NewConflictError("Duplicate username")
	}

	user.Username = username
	user.Roles = roles
	user.Active = active
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.NewPersistenceError("Failed to hash password", err)
		}
		user.Password = string(hashed)
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, domain.NewPersistenceError("Failed to update user", err)
	}
	return user, nil
}

// DeleteUser removes a user. A user still referenced by any note cannot be
// deleted; the dependency check runs before the existence check.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint) (*model.User, error) {
	note, err := s.notes.FindByUserID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to check assigned notes", err)
	}
	if note != nil {
		return nil, domain.NewDependencyError("User has assigned notes")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}
	if err := s.users.Delete(ctx, user); err != nil {
		return nil, domain.NewPersistenceError("Failed to delete user", err)
	}
	return user, nil
}
