package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-TriageService/internal/domain"
)

func seed() []*domain.Equipment {
	return []*domain.Equipment{
		{ID: 1, Name: "MRI-1", Status: domain.EquipmentAvailable, ServiceDurationMinutes: 60},
		{ID: 2, Name: "CT-Scanner", Status: domain.EquipmentAvailable, ServiceDurationMinutes: 30},
		{ID: 3, Name: "Ventilator-1", Status: domain.EquipmentMaintenance, ServiceDurationMinutes: 1440},
	}
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	repo := NewRepository(seed())

	items := repo.List()
	require.Len(t, items, 3)
	assert.Equal(t, "MRI-1", items[0].Name)
	assert.Equal(t, "CT-Scanner", items[1].Name)
	assert.Equal(t, "Ventilator-1", items[2].Name)
}

func TestGet_UnknownID(t *testing.T) {
	repo := NewRepository(seed())

	_, err := repo.Get(99)
	require.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestSetStatus_UnknownIDIsNoop(t *testing.T) {
	repo := NewRepository(seed())

	repo.SetStatus(99, domain.EquipmentInUse)

	items := repo.List()
	require.Len(t, items, 3)
	for _, eq := range items {
		assert.NotEqual(t, domain.EquipmentInUse, eq.Status)
	}
}

func TestSetStatus_UpdatesKnownID(t *testing.T) {
	repo := NewRepository(seed())

	repo.SetStatus(3, domain.EquipmentAvailable)

	eq, err := repo.Get(3)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentAvailable, eq.Status)
}

func TestMarkInUse_UnknownID(t *testing.T) {
	repo := NewRepository(seed())

	_, ok := repo.MarkInUse(99)
	assert.False(t, ok)
}

func TestMarkInUseAndRelease(t *testing.T) {
	repo := NewRepository(seed())

	token, ok := repo.MarkInUse(1)
	require.True(t, ok)

	eq, err := repo.Get(1)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentInUse, eq.Status)

	assert.True(t, repo.Release(1, token))

	eq, err = repo.Get(1)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentAvailable, eq.Status)
}

func TestRelease_StaleTokenIsNoop(t *testing.T) {
	repo := NewRepository(seed())

	staleToken, ok := repo.MarkInUse(1)
	require.True(t, ok)

	// Повторная диспетчеризация перезаписывает занятость новым токеном
	freshToken, ok := repo.MarkInUse(1)
	require.True(t, ok)
	require.NotEqual(t, staleToken, freshToken)

	// Устаревший таймер не сбрасывает более позднюю занятость
	assert.False(t, repo.Release(1, staleToken))
	eq, err := repo.Get(1)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentInUse, eq.Status)

	// Актуальный токен освобождает оборудование
	assert.True(t, repo.Release(1, freshToken))
	eq, err = repo.Get(1)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentAvailable, eq.Status)
}

func TestList_ReturnsCopies(t *testing.T) {
	repo := NewRepository(seed())

	items := repo.List()
	items[0].Status = domain.EquipmentMaintenance

	eq, err := repo.Get(1)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentAvailable, eq.Status)
}
