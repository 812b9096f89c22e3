package repository

import (
	"context"

	"bookmarks-api/internal/domain"
)

// BookmarkRepository persists bookmarks. Every read and write is scoped by owner.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *domain.Bookmark) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Bookmark, error)
	GetByOwner(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error)
	Update(ctx context.Context, bookmark *domain.Bookmark) error
	Delete(ctx context.Context, ownerID, id int64) error
}
