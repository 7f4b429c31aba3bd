package service

import (
	"testing"

	"carrier-hub/internal/features/carriers/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_RegisterAndGet verifies basic registration and lookup.
func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	adapter := newMockAdapter("dhl")

	registry.Register("dhl", adapter)

	got, err := registry.Get("dhl")
	require.NoError(t, err)
	assert.Same(t, adapter, got.(*mockAdapter))
}

// TestRegistry_Get_NotRegistered verifies the typed error for unknown carriers.
func TestRegistry_Get_NotRegistered(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("fedex")
	assert.ErrorIs(t, err, domain.ErrCarrierNotRegistered)
}

// TestRegistry_Register_Replace verifies re-registering swaps the adapter
// without touching other carriers.
func TestRegistry_Register_Replace(t *testing.T) {
	registry := NewRegistry()
	first := newMockAdapter("dhl")
	second := newMockAdapter("dhl")
	other := newMockAdapter("ups")

	registry.Register("dhl", first)
	registry.Register("ups", other)
	registry.Register("dhl", second)

	got, err := registry.Get("dhl")
	require.NoError(t, err)
	assert.Same(t, second, got.(*mockAdapter))

	gotOther, err := registry.Get("ups")
	require.NoError(t, err)
	assert.Same(t, other, gotOther.(*mockAdapter))

	assert.Len(t, registry.List(), 2)
}

// TestRegistry_Deregister verifies removal.
func TestRegistry_Deregister(t *testing.T) {
	registry := NewRegistry()
	registry.Register("dhl", newMockAdapter("dhl"))

	registry.Deregister("dhl")

	_, err := registry.Get("dhl")
	assert.ErrorIs(t, err, domain.ErrCarrierNotRegistered)
}

// TestRegistry_List_Sorted verifies deterministic ordering.
func TestRegistry_List_Sorted(t *testing.T) {
	registry := NewRegistry()
	registry.Register("ups", newMockAdapter("ups"))
	registry.Register("dhl", newMockAdapter("dhl"))
	registry.Register("fedex", newMockAdapter("fedex"))

	assert.Equal(t, []domain.CarrierID{"dhl", "fedex", "ups"}, registry.List())
}
