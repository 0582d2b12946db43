package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentacar/rentacar/internal/adapters/outbound/history"
	"github.com/rentacar/rentacar/internal/domain"
)

func TestFileHistory_LoadEmpty(t *testing.T) {
	h := history.New()

	entries, err := h.Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileHistory_SaveAppends(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	first := domain.RentalEntry{TransactionID: "t1", CustomerID: "ana", CarID: "c1", Amount: "R$ 206,80"}
	second := domain.RentalEntry{TransactionID: "t2", CustomerID: "bruno", CarID: "c2", Amount: "R$ 244,40"}

	require.NoError(t, h.Save(dir, first))
	require.NoError(t, h.Save(dir, second))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])

	_, err = os.Stat(filepath.Join(dir, ".rentacar", "history", "rentals.json"))
	assert.NoError(t, err)
}

func TestFileHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".rentacar", "history", "rentals.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
}
