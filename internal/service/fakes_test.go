package service

import (
	"context"
	"sort"
	"time"

	"github.com/JordanPiper315/techNotesBackend/internal/model"
)

// --- in-memory fakes for the persistence ports ---

type memUserRepo struct {
	nextID    uint
	users     map[uint]*model.User
	createErr error
	saveErr   error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uint]*model.User{}}
}

func (r *memUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	ids := make([]int, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.users[uint(id)])
	}
	return out, nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) Save(ctx context.Context, user *model.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, user *model.User) error {
	delete(r.users, user.ID)
	return nil
}

type memNoteRepo struct {
	nextID    uint
	notes     map[uint]*model.Note
	createErr error
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{notes: map[uint]*model.Note{}}
}

func (r *memNoteRepo) FindAll(ctx context.Context) ([]model.Note, error) {
	ids := make([]int, 0, len(r.notes))
	for id := range r.notes {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]model.Note, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.notes[uint(id)])
	}
	return out, nil
}

func (r *memNoteRepo) FindByID(ctx context.Context, id uint) (*model.Note, error) {
	if n, ok := r.notes[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, nil
}

func (r *memNoteRepo) FindByTitle(ctx context.Context, title string) (*model.Note, error) {
	for _, n := range r.notes {
		if n.Title == title {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memNoteRepo) FindByUserID(ctx context.Context, userID uint) (*model.Note, error) {
	for _, n := range r.notes {
		if n.UserID == userID {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memNoteRepo) Create(ctx context.Context, note *model.Note) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	note.ID = r.nextID
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *memNoteRepo) Save(ctx context.Context, note *model.Note) error {
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *memNoteRepo) Delete(ctx context.Context, note *model.Note) error {
	delete(r.notes, note.ID)
	return nil
}

type memTokenStore struct {
	revoked map[string]time.Duration
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{revoked: map[string]time.Duration{}}
}

func (s *memTokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	s.revoked[token] = ttl
	return nil
}

func (s *memTokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, ok := s.revoked[token]
	return ok, nil
}
