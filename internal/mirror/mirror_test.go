package mirror

import (
	"context"
	"path/filepath"
	"testing"

	"alvs-system/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestMirror(t *testing.T) *Mirror {
	t.Helper()
	m, err := Open(filepath.Join(t.TempDir(), "mirror.db"))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	m := openTestMirror(t)
	ctx := context.Background()

	in := []entities.Customer{
		{ID: "c1", Name: "Hospital das Clínicas", TaxID: "12.345.678/0001-90"},
		{ID: "c2", Name: "Clínica Saúde Vital"},
	}
	require.NoError(t, m.Save(ctx, KindCustomers, in))

	var out []entities.Customer
	found, err := m.Load(ctx, KindCustomers, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestLoadMissingSlot(t *testing.T) {
	m := openTestMirror(t)

	var out []entities.Equipment
	found, err := m.Load(context.Background(), KindEquipments, &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, out)
}

func TestSaveOverwritesSlot(t *testing.T) {
	m := openTestMirror(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, KindEquipments, []entities.Equipment{{ID: "e1", Name: "Old"}}))
	require.NoError(t, m.Save(ctx, KindEquipments, []entities.Equipment{{ID: "e2", Name: "New"}}))

	var out []entities.Equipment
	found, err := m.Load(ctx, KindEquipments, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, out, 1)
	assert.Equal(t, "e2", out[0].ID)
}

func TestSlotsAreIndependent(t *testing.T) {
	m := openTestMirror(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, KindCustomers, []entities.Customer{{ID: "c1"}}))
	require.NoError(t, m.Save(ctx, KindSuppliers, []entities.Supplier{{ID: "s1"}, {ID: "s2"}}))

	var customers []entities.Customer
	var suppliers []entities.Supplier
	_, err := m.Load(ctx, KindCustomers, &customers)
	require.NoError(t, err)
	_, err = m.Load(ctx, KindSuppliers, &suppliers)
	require.NoError(t, err)

	assert.Len(t, customers, 1)
	assert.Len(t, suppliers, 2)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.db")
	ctx := context.Background()

	m, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, m.Save(ctx, KindEquipments, []entities.Equipment{{ID: "e1", Code: "ALVS-260829-AB12C"}}))
	require.NoError(t, m.Close())

	m, err = Open(path)
	require.NoError(t, err)
	defer m.Close()

	var out []entities.Equipment
	found, err := m.Load(ctx, KindEquipments, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "ALVS-260829-AB12C", out[0].Code)
}
