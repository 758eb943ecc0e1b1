package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyUnpadded(t *testing.T) {
	assert.Equal(t, "6/6/2025", DateKey(time.Date(2025, 6, 6, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "25/12/2025", DateKey(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1/1/2026", DateKey(time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)))
}

func TestSlotCatalog(t *testing.T) {
	require.Len(t, SlotCatalog, 4)
	for i, slot := range SlotCatalog {
		assert.Equal(t, i, slot.ID, "catalog is ordered by ID")
		assert.NotEmpty(t, slot.Label)
	}
}

func TestSlotByID(t *testing.T) {
	slot, ok := SlotByID(2)
	require.True(t, ok)
	assert.Equal(t, "13:00 - 15:00", slot.Label)

	_, ok = SlotByID(4)
	assert.False(t, ok)
	_, ok = SlotByID(-1)
	assert.False(t, ok)
}
