package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookmarks-api/internal/domain"
	"bookmarks-api/internal/repository"
)

const bookmarkColumns = `id, user_id, title, description, link, created_at, updated_at`

type BookmarkRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewBookmarkRepository(db *sql.DB, dialect Dialect) repository.BookmarkRepository {
	return &BookmarkRepository{db: db, dialect: dialect}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) (int64, error) {
	now := time.Now().UTC()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	var id int64
	err := r.db.QueryRowContext(ctx, r.dialect.rebind(`
INSERT INTO bookmarks (user_id, title, description, link, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id`),
		bookmark.OwnerID,
		bookmark.Title,
		nullableString(bookmark.Description),
		bookmark.Link,
		bookmark.CreatedAt,
		bookmark.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("insert bookmark", err)
	}

	bookmark.ID = id
	return id, nil
}

func (r *BookmarkRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.rebind(`
SELECT `+bookmarkColumns+`
FROM bookmarks
WHERE user_id = ?
ORDER BY id ASC`), ownerID)
	if err != nil {
		return nil, fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := make([]domain.Bookmark, 0)
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, *bookmark)
	}

	return bookmarks, rows.Err()
}

func (r *BookmarkRepository) GetByOwner(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.rebind(`
SELECT `+bookmarkColumns+`
FROM bookmarks
WHERE id = ? AND user_id = ?`),
		id,
		ownerID,
	)
	return scanBookmark(row)
}

func (r *BookmarkRepository) Update(ctx context.Context, bookmark *domain.Bookmark) error {
	bookmark.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, r.dialect.rebind(`
UPDATE bookmarks
SET title = ?, description = ?, link = ?, updated_at = ?
WHERE id = ? AND user_id = ?`),
		bookmark.Title,
		nullableString(bookmark.Description),
		bookmark.Link,
		bookmark.UpdatedAt,
		bookmark.ID,
		bookmark.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update bookmark: %w", err)
	}
	return expectAffected(res, "update bookmark")
}

func (r *BookmarkRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := r.db.ExecContext(ctx, r.dialect.rebind(`DELETE FROM bookmarks WHERE id = ? AND user_id = ?`), id, ownerID)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return expectAffected(res, "delete bookmark")
}

func scanBookmark(row interface {
	Scan(dest ...any) error
}) (*domain.Bookmark, error) {
	var (
		bookmark    domain.Bookmark
		description sql.NullString
	)
	if err := row.Scan(
		&bookmark.ID,
		&bookmark.OwnerID,
		&bookmark.Title,
		&description,
		&bookmark.Link,
		&bookmark.CreatedAt,
		&bookmark.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan bookmark: %w", err)
	}
	if description.Valid {
		bookmark.Description = &description.String
	}
	return &bookmark, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
