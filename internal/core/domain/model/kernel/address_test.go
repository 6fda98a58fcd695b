package kernel_test

import (
	"testing"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should normalize and keep all parts", func(t *testing.T) {
		addr, err := kernel.NewAddress(" 1 Harbor Way ", "Long Beach", "ca", "90802-1234")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "1 Harbor Way", addr.Street())
		assert.Equal(t, "Long Beach", addr.City())
		assert.Equal(t, "CA", addr.State())
		assert.Equal(t, "90802-1234", addr.Zipcode())
		assert.Equal(t, "1 Harbor Way, Long Beach, CA 90802-1234", addr.String())
	})

	t.Run("should report every missing part", func(t *testing.T) {
		_, err := kernel.NewAddress("", " ", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "state")
		assert.Contains(t, err.Error(), "zipcode")
	})

	t.Run("should reject malformed state and zip", func(t *testing.T) {
		_, err := kernel.NewAddress("1 Harbor Way", "Long Beach", "Cal", "9080")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "state")
		assert.Contains(t, err.Error(), "zipcode")
	})
}

func TestAddress_Validate(t *testing.T) {
	var zero kernel.Address

	require.ErrorIs(t, zero.Validate(), kernel.ErrAddressIsNotConstructed)
}

func TestAddress_IsEqual(t *testing.T) {
	a, _ := kernel.NewAddress("1 Harbor Way", "Long Beach", "CA", "90802")
	b, _ := kernel.NewAddress("1 Harbor Way", "Long Beach", "ca", "90802")
	c, _ := kernel.NewAddress("2 Harbor Way", "Long Beach", "CA", "90802")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
