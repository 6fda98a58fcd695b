package commands_test

import (
	"testing"

	"drayage/internal/core/application/usecases/commands"
	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportPlan() []commands.PlannedTask {
	terminal := kernel.NewUUID()
	shipper := kernel.NewUUID()
	return []commands.PlannedTask{
		{Instruction: dispatch.PickupEmpty, LocationID: &terminal},
		{Instruction: dispatch.LiveLoad, LocationID: &shipper},
		{Instruction: dispatch.Ingate, LocationID: &terminal},
	}
}

func TestNewCreateDispatchCommand_ValidInput(t *testing.T) {
	brokerID := kernel.NewUUID()

	cmd, err := commands.NewCreateDispatchCommand(brokerID, []string{" cmau1234567 "}, exportPlan())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.NoError(t, cmd.DispatchID().Validate())
	assert.Equal(t, brokerID, cmd.BrokerID())
	require.Len(t, cmd.Containers(), 1)
	assert.Equal(t, "CMAU1234567", cmd.Containers()[0].Number())
	assert.Len(t, cmd.Plan(), 3)
}

func TestNewCreateDispatchCommand_GeneratesDistinctIDs(t *testing.T) {
	first, err := commands.NewCreateDispatchCommand(kernel.NewUUID(), []string{"CMAU1234567"}, exportPlan())
	require.NoError(t, err)
	second, err := commands.NewCreateDispatchCommand(kernel.NewUUID(), []string{"CMAU1234567"}, exportPlan())
	require.NoError(t, err)

	assert.False(t, first.DispatchID().IsEqual(second.DispatchID()))
}

func TestNewCreateDispatchCommand_InvalidInput(t *testing.T) {
	t.Run("should reject a zero broker id", func(t *testing.T) {
		_, err := commands.NewCreateDispatchCommand(kernel.UUID{}, []string{"CMAU1234567"}, exportPlan())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a malformed container number", func(t *testing.T) {
		_, err := commands.NewCreateDispatchCommand(kernel.NewUUID(), []string{"not-a-box"}, exportPlan())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an empty plan", func(t *testing.T) {
		_, err := commands.NewCreateDispatchCommand(kernel.NewUUID(), []string{"CMAU1234567"}, nil)
		require.ErrorIs(t, err, commands.ErrPlanIsRequired)
	})

	t.Run("should reject an unknown instruction", func(t *testing.T) {
		plan := exportPlan()
		plan[1].Instruction = dispatch.UnknownInstruction

		_, err := commands.NewCreateDispatchCommand(kernel.NewUUID(), []string{"CMAU1234567"}, plan)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "task 2")
	})
}

func TestCreateDispatchCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateDispatchCommand

	err := cmd.Validate()

	require.ErrorIs(t, err, commands.ErrCreateDispatchCommandIsNotConstructed)
}
