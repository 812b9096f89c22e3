package service

import (
	"context"
	"errors"
	"strings"

	"bookmarks-api/internal/domain"
	"bookmarks-api/internal/repository"
)

type CreateBookmarkInput struct {
	Title       string
	Link        string
	Description *string
}

// EditBookmarkInput is a partial update. Nil fields are left unchanged.
type EditBookmarkInput struct {
	Title       *string
	Link        *string
	Description *string
}

// BookmarkService exposes bookmark CRUD scoped to a single owner.
type BookmarkService interface {
	List(ctx context.Context, ownerID int64) ([]domain.Bookmark, error)
	Get(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error)
	Create(ctx context.Context, ownerID int64, in CreateBookmarkInput) (*domain.Bookmark, error)
	Edit(ctx context.Context, ownerID, id int64, in EditBookmarkInput) (*domain.Bookmark, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type bookmarkService struct {
	bookmarks repository.BookmarkRepository
}

func NewBookmarkService(bookmarks repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarks: bookmarks}
}

func (s *bookmarkService) List(ctx context.Context, ownerID int64) ([]domain.Bookmark, error) {
	bookmarks, err := s.bookmarks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.Internal("list bookmarks", err)
	}
	return bookmarks, nil
}

func (s *bookmarkService) Get(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error) {
	bookmark, err := s.bookmarks.GetByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, bookmarkErr("get bookmark", err)
	}
	return bookmark, nil
}

func (s *bookmarkService) Create(ctx context.Context, ownerID int64, in CreateBookmarkInput) (*domain.Bookmark, error) {
	bookmark := &domain.Bookmark{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(in.Title),
		Link:        strings.TrimSpace(in.Link),
		Description: in.Description,
	}
	if bookmark.Title == "" || bookmark.Link == "" {
		return nil, domain.Validation("title and link are required")
	}

	if _, err := s.bookmarks.Create(ctx, bookmark); err != nil {
		return nil, domain.Internal("create bookmark", err)
	}
	return bookmark, nil
}

func (s *bookmarkService) Edit(ctx context.Context, ownerID, id int64, in EditBookmarkInput) (*domain.Bookmark, error) {
	bookmark, err := s.bookmarks.GetByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, bookmarkErr("get bookmark", err)
	}

	if in.Title != nil {
		bookmark.Title = strings.TrimSpace(*in.Title)
	}
	if in.Link != nil {
		bookmark.Link = strings.TrimSpace(*in.Link)
	}
	if in.Description != nil {
		bookmark.Description = in.Description
	}
	if bookmark.Title == "" || bookmark.Link == "" {
		return nil, domain.Validation("title and link must not be empty")
	}

	if err := s.bookmarks.Update(ctx, bookmark); err != nil {
		return nil, bookmarkErr("update bookmark", err)
	}
	return bookmark, nil
}

func (s *bookmarkService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.bookmarks.Delete(ctx, ownerID, id); err != nil {
		return bookmarkErr("delete bookmark", err)
	}
	return nil
}

// bookmarkErr reports missing and foreign bookmarks alike as not found.
func bookmarkErr(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NotFound("bookmark not found", err)
	}
	return domain.Internal(op, err)
}
