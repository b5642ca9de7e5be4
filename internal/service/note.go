package service

import (
	"context"
	"sync"

	"github.com/JordanPiper315/techNotesBackend/internal/domain"
	"github.com/JordanPiper315/techNotesBackend/internal/model"
)

// NoteServiceImpl implements the domain.NoteService interface
type NoteServiceImpl struct {
	notes domain.NoteRepository
	users domain.UserRepository
}

func NewNoteService(notes domain.NoteRepository, users domain.UserRepository) *NoteServiceImpl {
	return &NoteServiceImpl{notes: notes, users: users}
}

// ListNotes returns all notes, each joined with its owner's username. The
// user lookups run concurrently, one per note. A note whose user has been
// deleted keeps an empty username rather than failing the whole list.
func (s *NoteServiceImpl) ListNotes(ctx context.Context) ([]model.NoteView, error) {
	notes, err := s.notes.FindAll(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch notes", err)
	}
	if len(notes) == 0 {
		return nil, domain.NewNotFoundError("No notes found")
	}

	views := make([]model.NoteView, len(notes))
	var wg sync.WaitGroup
	for i, note := range notes {
		i, note := i, note
		views[i].Note = note
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := s.users.FindByID(ctx, note.UserID)
			if err == nil && user != nil {
				views[i].Username = user.Username
			}
		}()
	}
	wg.Wait()

	return views, nil
}

// CreateNote stores a new note after checking the title is unused. The
// duplicate check is a separate read before the write; the unique index on
// title backstops the race two concurrent creates could otherwise win.
func (s *NoteServiceImpl) CreateNote(ctx context.Context, userID uint, title, text string) (*model.Note, error) {
	duplicate, err := s.notes.FindByTitle(ctx, title)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to check note title", err)
	}
	if duplicate != nil {
		return nil, domain.NewConflictError("Duplicate note title")
	}

	note := model.Note{
		UserID: userID,
		Title:  title,
		Text:   text,
	}
	if err := s.notes.Create(ctx, &note); err != nil {
		return nil, domain.NewPersistenceError("Invalid note data received", err)
	}
	return &note, nil
}

// UpdateNote overwrites user/title/text/completed of an existing note.
// Renaming a note to its own current title is allowed.
func (s *NoteServiceImpl) UpdateNote(ctx context.Context, id, userID uint, title, text string, completed bool) (*model.Note, error) {
	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch note", err)
	}
	if note == nil {
		return nil, domain.NewNotFoundError("Note not found")
	}

	duplicate, err := s.notes.FindByTitle(ctx, title)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to check note title", err)
	}
	if duplicate != nil && duplicate.ID != id {
		return nil, domain.NewConflictError("Duplicate note title")
	}

	note.UserID = userID
	note.Title = title
	note.Text = text
	note.Completed = completed
	if err := s.notes.Save(ctx, note); err != nil {
		return nil, domain.NewPersistenceError("Failed to update note", err)
	}
	return note, nil
}

// DeleteNote removes a note unconditionally and returns the deleted record.
func (s *NoteServiceImpl) DeleteNote(ctx context.Context, id uint) (*model.Note, error) {
	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch note", err)
	}
	if note == nil {
		return nil, domain.NewNotFoundError("Note not found")
	}
	if err := s.notes.Delete(ctx, note); err != nil {
		return nil, domain.NewPersistenceError("Failed to delete note", err)
	}
	return note, nil
}
