package api

import (
	"context"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/JordanPiper315/techNotesBackend/internal/model"
	"github.com/JordanPiper315/techNotesBackend/internal/service"
)

// Handlers are tested against the real services over in-memory ports, so the
// full validate-persist-respond path is exercised without a database.

type stubUserRepo struct {
	nextID uint
	users  map[uint]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uint]*model.User{}}
}

func (r *stubUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
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

func (r *stubUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *stubUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(ctx context.Context, user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) Save(ctx context.Context, user *model.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) Delete(ctx context.Context, user *model.User) error {
	delete(r.users, user.ID)
	return nil
}

type stubNoteRepo struct {
	nextID uint
	notes  map[uint]*model.Note
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{notes: map[uint]*model.Note{}}
}

func (r *stubNoteRepo) FindAll(ctx context.Context) ([]model.Note, error) {
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

func (r *stubNoteRepo) FindByID(ctx context.Context, id uint) (*model.Note, error) {
	if n, ok := r.notes[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, nil
}

func (r *stubNoteRepo) FindByTitle(ctx context.Context, title string) (*model.Note, error) {
	for _, n := range r.notes {
		if n.Title == title {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubNoteRepo) FindByUserID(ctx context.Context, userID uint) (*model.Note, error) {
	for _, n := range r.notes {
		if n.UserID == userID {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubNoteRepo) Create(ctx context.Context, note *model.Note) error {
	r.nextID++
	note.ID = r.nextID
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *stubNoteRepo) Save(ctx context.Context, note *model.Note) error {
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *stubNoteRepo) Delete(ctx context.Context, note *model.Note) error {
	delete(r.notes, note.ID)
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *stubNoteRepo, *stubUserRepo) {
	t.Helper()
	notes := newStubNoteRepo()
	users := newStubUserRepo()

	noteHandler := NewNoteHandler(service.NewNoteService(notes, users))
	userHandler := NewUserHandler(service.NewUserService(users, notes))

	app := fiber.New()
	app.Get("/api/notes", noteHandler.GetAllNotes)
	app.Post("/api/notes", noteHandler.CreateNote)
	app.Patch("/api/notes", noteHandler.UpdateNote)
	app.Delete("/api/notes", noteHandler.DeleteNote)
	app.Get("/api/users", userHandler.GetAllUsers)
	app.Post("/api/users", userHandler.CreateUser)
	app.Patch("/api/users", userHandler.UpdateUser)
	app.Delete("/api/users", userHandler.DeleteUser)
	return app, notes, users
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	return resp.StatusCode, string(data)
}

func wantStatus(t *testing.T, got int, want int) {
	t.Helper()
	if got != want {
		t.Errorf("expected status %d, got %d", want, got)
	}
}
