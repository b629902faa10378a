package usecase

import (
	"context"
	"errors"

	"monitor-srv/internal/model"
	"monitor-srv/internal/watchlist"
	"monitor-srv/internal/watchlist/repository"
)

func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input watchlist.AddInput) (model.WatchedEntity, error) {
	if input.EntityID == "" {
		return model.WatchedEntity{}, watchlist.ErrEntityIDRequired
	}
	if input.Name == "" {
		return model.WatchedEntity{}, watchlist.ErrNameRequired
	}
	if input.PinnedPairWith != nil && *input.PinnedPairWith == input.EntityID {
		return model.WatchedEntity{}, watchlist.ErrSelfPair
	}

	// One row per entity.
	_, err := uc.repo.GetByEntityID(ctx, input.EntityID)
	if err == nil {
		return model.WatchedEntity{}, watchlist.ErrAlreadyWatched
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "watchlist.usecase.Add: GetByEntityID failed: %v", err)
		return model.WatchedEntity{}, watchlist.ErrStoreFailed
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		EntityID:       input.EntityID,
		Name:           input.Name,
		Platform:       input.Platform,
		CreatedBy:      sc.UserID,
		PinnedPairWith: input.PinnedPairWith,
	})
	if err != nil {
		uc.l.Errorf(ctx, "watchlist.usecase.Add: Create failed: %v", err)
		return model.WatchedEntity{}, watchlist.ErrStoreFailed
	}

	uc.l.Infof(ctx, "watchlist.usecase.Add: watching entity %s as %s", created.EntityID, created.ID)
	return created, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.WatchedEntity, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.WatchedEntity{}, watchlist.ErrNotFound
		}
		uc.l.Errorf(ctx, "watchlist.usecase.Detail: GetByID failed: %v", err)
		return model.WatchedEntity{}, watchlist.ErrStoreFailed
	}
	return w, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input watchlist.ListInput) (watchlist.ListOutput, error) {
	pq := input.Paginate
	pq.Adjust()

	entities, pag, err := uc.repo.List(ctx, repository.ListOptions{
		Limit:  pq.Limit,
		Offset: pq.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "watchlist.usecase.List: List failed: %v", err)
		return watchlist.ListOutput{}, watchlist.ErrStoreFailed
	}

	return watchlist.ListOutput{
		Entities:  entities,
		Paginator: pag,
	}, nil
}

func (uc *implUseCase) ListAll(ctx context.Context) ([]model.WatchedEntity, error) {
	entities, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "watchlist.usecase.ListAll: ListAll failed: %v", err)
		return nil, watchlist.ErrStoreFailed
	}
	return entities, nil
}

func (uc *implUseCase) PinPair(ctx context.Context, sc model.Scope, input watchlist.PinPairInput) (model.WatchedEntity, error) {
	if input.PairWith == "" {
		return model.WatchedEntity{}, watchlist.ErrPairTargetRequired
	}

	w, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.WatchedEntity{}, watchlist.ErrNotFound
		}
		uc.l.Errorf(ctx, "watchlist.usecase.PinPair: GetByID failed: %v", err)
		return model.WatchedEntity{}, watchlist.ErrStoreFailed
	}
	if w.EntityID == input.PairWith {
		return model.WatchedEntity{}, watchlist.ErrSelfPair
	}

	updated, err := uc.repo.UpdatePinnedPair(ctx, repository.UpdatePinnedPairOptions{
		ID:             input.ID,
		PinnedPairWith: &input.PairWith,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.WatchedEntity{}, watchlist.ErrNotFound
		}
		uc.l.Errorf(ctx, "watchlist.usecase.PinPair: UpdatePinnedPair failed: %v", err)
		return model.WatchedEntity{}, watchlist.ErrStoreFailed
	}

	return updated, nil
}

func (uc *implUseCase) UnpinPair(ctx context.Context, sc model.Scope, id string) (model.WatchedEntity, error) {
	updated, err := uc.repo.UpdatePinnedPair(ctx, repository.UpdatePinnedPairOptions{
		ID: id,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.WatchedEntity{}, watchlist.ErrNotFound
		}
		uc.l.Errorf(ctx, "watchlist.usecase.UnpinPair: UpdatePinnedPair failed: %v", err)
		return model.WatchedEntity{}, watchlist.ErrStoreFailed
	}
	return updated, nil
}

func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope, id string) error {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return watchlist.ErrNotFound
		}
		uc.l.Errorf(ctx, "watchlist.usecase.Remove: GetByID failed: %v", err)
		return watchlist.ErrStoreFailed
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return watchlist.ErrNotFound
		}
		uc.l.Errorf(ctx, "watchlist.usecase.Remove: Delete failed: %v", err)
		return watchlist.ErrStoreFailed
	}

	// Nothing refreshes the snapshot once the entity is unwatched.
	if err := uc.metricsUC.Invalidate(ctx, sc, w.EntityID); err != nil {
		uc.l.Warnf(ctx, "watchlist.usecase.Remove: snapshot invalidate failed for %s: %v", w.EntityID, err)
	}

	uc.l.Infof(ctx, "watchlist.usecase.Remove: stopped watching entity %s", w.EntityID)
	return nil
}
