package dispatch_test

import (
	"testing"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstruction(t *testing.T) {
	t.Run("should parse every instruction from its own name", func(t *testing.T) {
		for _, instruction := range dispatch.Instructions() {
			parsed, err := dispatch.ParseInstruction(instruction.String())

			require.NoError(t, err)
			assert.Equal(t, instruction, parsed)
		}
	})

	t.Run("should ignore letter case and surrounding spaces", func(t *testing.T) {
		parsed, err := dispatch.ParseInstruction("  live_load ")

		require.NoError(t, err)
		assert.Equal(t, dispatch.LiveLoad, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "UNKNOWN", "TERMINATE", "DELIVER"} {
			parsed, err := dispatch.ParseInstruction(name)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, dispatch.UnknownInstruction, parsed)
		}
	})
}

func TestInstruction_Validate(t *testing.T) {
	t.Run("should accept all declared instructions", func(t *testing.T) {
		assert.Len(t, dispatch.Instructions(), 14)
		for _, instruction := range dispatch.Instructions() {
			require.NoError(t, instruction.Validate())
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		for _, instruction := range []dispatch.Instruction{dispatch.UnknownInstruction, -1, 99} {
			require.ErrorIs(t, instruction.Validate(), errs.ErrValueIsInvalid)
			assert.Equal(t, "UNKNOWN", instruction.String())
		}
	})
}

func TestInstruction_RequiresContainer(t *testing.T) {
	t.Run("should not require a container for chassis and bobtail moves", func(t *testing.T) {
		assert.False(t, dispatch.FetchChassis.RequiresContainer())
		assert.False(t, dispatch.BobtailTo.RequiresContainer())
		assert.False(t, dispatch.TerminateChassis.RequiresContainer())
	})

	t.Run("should require a container for container moves", func(t *testing.T) {
		for _, instruction := range []dispatch.Instruction{
			dispatch.Prepull, dispatch.PickupEmpty, dispatch.LiveLoad, dispatch.Ingate, dispatch.YardPull, dispatch.StreetTurn,
		} {
			assert.True(t, instruction.RequiresContainer(), instruction.String())
		}
	})
}

func TestInstruction_CanStopOff(t *testing.T) {
	t.Run("should forbid stop-offs for moves without cargo and street turns", func(t *testing.T) {
		for _, instruction := range []dispatch.Instruction{
			dispatch.BobtailTo, dispatch.FetchChassis, dispatch.TerminateChassis, dispatch.StreetTurn,
		} {
			assert.False(t, instruction.CanStopOff(), instruction.String())
		}
	})

	t.Run("should allow stop-offs for container moves", func(t *testing.T) {
		assert.True(t, dispatch.PickupEmpty.CanStopOff())
		assert.True(t, dispatch.LiveUnload.CanStopOff())
	})
}
