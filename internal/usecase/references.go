package usecase

import (
	"context"
	"fmt"

	"github.com/hszk-dev/catalog/internal/domain/model"
)

// missingIDs returns the ids in want that list does not return.
func missingIDs[T model.Aggregate](ctx context.Context, want model.IDSet, list func(context.Context) ([]T, error)) (model.IDSet, error) {
	if len(want) == 0 {
		return model.NewIDSet(), nil
	}

	items, err := list(ctx)
	if err != nil {
		return nil, err
	}

	existing := make(model.IDSet, len(items))
	for _, item := range items {
		existing[item.AggregateID()] = struct{}{}
	}
	return want.Difference(existing), nil
}

// referenceCheck accumulates every missing reference before failing, so a
// caller sees all unknown categories, genres and cast members at once.
type referenceCheck struct {
	n   *model.Notification
	err error
}

func newReferenceCheck() *referenceCheck {
	return &referenceCheck{n: model.NewNotification()}
}

func check[T model.Aggregate](ctx context.Context, rc *referenceCheck, label string, want model.IDSet, list func(context.Context) ([]T, error)) {
	if rc.err != nil {
		return
	}
	missing, err := missingIDs(ctx, want, list)
	if err != nil {
		rc.err = fmt.Errorf("list %s: %w", label, err)
		return
	}
	if len(missing) > 0 {
		rc.n.AddError(fmt.Sprintf("Invalid %s with provided IDs not found: %s", label, missing))
	}
}

// Err returns the first infrastructure failure, or ErrRelatedEntitiesNotFound
// carrying every accumulated message.
func (rc *referenceCheck) Err() error {
	if rc.err != nil {
		return rc.err
	}
	if rc.n.HasErrors() {
		return fmt.Errorf("%w: %s", ErrRelatedEntitiesNotFound, rc.n.Messages())
	}
	return nil
}
