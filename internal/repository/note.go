package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JordanPiper315/techNotesBackend/internal/model"
)

type NoteRepo struct {
	db *gorm.DB
}

func NewNoteRepo(db *gorm.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

func (r *NoteRepo) FindAll(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepo) FindByID(ctx context.Context, id uint) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepo) FindByTitle(ctx context.Context, title string) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepo) FindByUserID(ctx context.Context, userID uint) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepo) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *NoteRepo) Save(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *NoteRepo) Delete(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Delete(note).Error
}
