package guard_test

import (
	"errors"
	"testing"

	"drayage/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guardedCommand struct {
	name  string
	guard guard.ConstructorGuard
}

var errGuardedCommandIsNotConstructed = errors.New("guardedCommand must be created via newGuardedCommand")

func newGuardedCommand(name string) guardedCommand {
	return guardedCommand{name: name, guard: guard.NewConstructorGuard()}
}

func (c guardedCommand) Validate() error {
	return c.guard.Validate(errGuardedCommandIsNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should accept constructed guard with and without custom error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return custom error for zero value", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.ErrorIs(t, err, expected)
	})

	t.Run("should fall back to default error for zero value", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	t.Run("should validate struct built by its constructor", func(t *testing.T) {
		cmd := newGuardedCommand("start")

		require.NoError(t, cmd.Validate())
		assert.Equal(t, "start", cmd.name)
	})

	t.Run("should reject struct literal", func(t *testing.T) {
		cmd := guardedCommand{name: "start"}

		require.ErrorIs(t, cmd.Validate(), errGuardedCommandIsNotConstructed)
	})

	t.Run("should survive copies", func(t *testing.T) {
		original := newGuardedCommand("copy")
		copied := original

		require.NoError(t, copied.Validate())
	})
}
