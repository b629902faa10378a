package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/watchlist/repository"
	"monitor-srv/pkg/paginator"

	"github.com/google/uuid"
)

// Create - Insert a watchlist row
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.WatchedEntity, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO monitor.watched_entities (id, entity_id, display_name, platform, created_by, pinned_pair_with, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, entity_id, display_name, platform, created_by, pinned_pair_with, created_at, updated_at
	`

	var w model.WatchedEntity
	var pinnedPair sql.NullString
	var updatedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query,
		id, opt.EntityID, opt.Name, opt.Platform, opt.CreatedBy, opt.PinnedPairWith, now,
	).Scan(
		&w.ID, &w.EntityID, &w.Name, &w.Platform, &w.CreatedBy,
		&pinnedPair, &w.CreatedAt, &updatedAt,
	)
	if err != nil {
		return model.WatchedEntity{}, fmt.Errorf("Create: %w", err)
	}

	if pinnedPair.Valid {
		w.PinnedPairWith = &pinnedPair.String
	}
	if updatedAt.Valid {
		w.UpdatedAt = &updatedAt.Time
	}

	return w, nil
}

// GetByID - Primary key lookup
func (r *implRepository) GetByID(ctx context.Context, id string) (model.WatchedEntity, error) {
	query := `
		SELECT id, entity_id, display_name, platform, created_by, pinned_pair_with, created_at, updated_at
		FROM monitor.watched_entities
		WHERE id = $1
	`

	var w model.WatchedEntity
	var pinnedPair sql.NullString
	var updatedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.EntityID, &w.Name, &w.Platform, &w.CreatedBy,
		&pinnedPair, &w.CreatedAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return model.WatchedEntity{}, repository.ErrNotFound
	}
	if err != nil {
		return model.WatchedEntity{}, fmt.Errorf("GetByID: %w", err)
	}

	if pinnedPair.Valid {
		w.PinnedPairWith = &pinnedPair.String
	}
	if updatedAt.Valid {
		w.UpdatedAt = &updatedAt.Time
	}

	return w, nil
}

// GetByEntityID - Lookup by the watched entity id
func (r *implRepository) GetByEntityID(ctx context.Context, entityID string) (model.WatchedEntity, error) {
	query := `
		SELECT id, entity_id, display_name, platform, created_by, pinned_pair_with, created_at, updated_at
		FROM monitor.watched_entities
		WHERE entity_id = $1
	`

	var w model.WatchedEntity
	var pinnedPair sql.NullString
	var updatedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, entityID).Scan(
		&w.ID, &w.EntityID, &w.Name, &w.Platform, &w.CreatedBy,
		&pinnedPair, &w.CreatedAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return model.WatchedEntity{}, repository.ErrNotFound
	}
	if err != nil {
		return model.WatchedEntity{}, fmt.Errorf("GetByEntityID: %w", err)
	}

	if pinnedPair.Valid {
		w.PinnedPairWith = &pinnedPair.String
	}
	if updatedAt.Valid {
		w.UpdatedAt = &updatedAt.Time
	}

	return w, nil
}

// List - Page of watchlist rows plus the paginator
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.WatchedEntity, paginator.Paginator, error) {
	// 1. Count total
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM monitor.watched_entities`).Scan(&total); err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("List count: %w", err)
	}

	// 2. Get data
	query := `
		SELECT id, entity_id, display_name, platform, created_by, pinned_pair_with, created_at, updated_at
		FROM monitor.watched_entities
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, opt.Limit, opt.Offset)
	if err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	var entities []model.WatchedEntity
	for rows.Next() {
		var w model.WatchedEntity
		var pinnedPair sql.NullString
		var updatedAt sql.NullTime

		if err := rows.Scan(
			&w.ID, &w.EntityID, &w.Name, &w.Platform, &w.CreatedBy,
			&pinnedPair, &w.CreatedAt, &updatedAt,
		); err != nil {
			return nil, paginator.Paginator{}, fmt.Errorf("List scan: %w", err)
		}

		if pinnedPair.Valid {
			w.PinnedPairWith = &pinnedPair.String
		}
		if updatedAt.Valid {
			w.UpdatedAt = &updatedAt.Time
		}
		entities = append(entities, w)
	}
	if err := rows.Err(); err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("List rows: %w", err)
	}

	// 3. Build paginator
	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(entities)),
		PerPage:     opt.Limit,
		CurrentPage: int(opt.Offset/opt.Limit) + 1,
	}

	return entities, pag, nil
}

// ListAll - Every row, oldest first, for the collector loop
func (r *implRepository) ListAll(ctx context.Context) ([]model.WatchedEntity, error) {
	query := `
		SELECT id, entity_id, display_name, platform, created_by, pinned_pair_with, created_at, updated_at
		FROM monitor.watched_entities
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	defer rows.Close()

	var entities []model.WatchedEntity
	for rows.Next() {
		var w model.WatchedEntity
		var pinnedPair sql.NullString
		var updatedAt sql.NullTime

		if err := rows.Scan(
			&w.ID, &w.EntityID, &w.Name, &w.Platform, &w.CreatedBy,
			&pinnedPair, &w.CreatedAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListAll scan: %w", err)
		}

		if pinnedPair.Valid {
			w.PinnedPairWith = &pinnedPair.String
		}
		if updatedAt.Valid {
			w.UpdatedAt = &updatedAt.Time
		}
		entities = append(entities, w)
	}

	return entities, rows.Err()
}

// UpdatePinnedPair - Set or clear the standing comparison partner
func (r *implRepository) UpdatePinnedPair(ctx context.Context, opt repository.UpdatePinnedPairOptions) (model.WatchedEntity, error) {
	query := `
		UPDATE monitor.watched_entities
		SET pinned_pair_with = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, entity_id, display_name, platform, created_by, pinned_pair_with, created_at, updated_at
	`

	var w model.WatchedEntity
	var pinnedPair sql.NullString
	var updatedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, opt.PinnedPairWith, time.Now(), opt.ID).Scan(
		&w.ID, &w.EntityID, &w.Name, &w.Platform, &w.CreatedBy,
		&pinnedPair, &w.CreatedAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return model.WatchedEntity{}, repository.ErrNotFound
	}
	if err != nil {
		return model.WatchedEntity{}, fmt.Errorf("UpdatePinnedPair: %w", err)
	}

	if pinnedPair.Valid {
		w.PinnedPairWith = &pinnedPair.String
	}
	if updatedAt.Valid {
		w.UpdatedAt = &updatedAt.Time
	}

	return w, nil
}

// Delete - Remove a watchlist row
func (r *implRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM monitor.watched_entities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
