package commands

import (
	"context"
	"strings"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/core/ports"
	"drayage/internal/pkg/errs"
)

// validatePriority checks the static bounds of a task position.
// The dispatch checks it against its current plan length.
func validatePriority(priority int) error {
	if priority < 1 || priority > dispatch.MaxTasks {
		return errs.NewValueIsOutOfRangeError("priority", priority, 1, dispatch.MaxTasks)
	}
	return nil
}

// ensureLocationCanBePlanned loads a location and checks that tasks may reference it.
func ensureLocationCanBePlanned(ctx context.Context, repo ports.LocationRepository, id kernel.UUID) error {
	l, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	return l.ValidateCanPlan()
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	return nil
}
