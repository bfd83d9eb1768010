package store

import (
	"fmt"
	"testing"

	"alvs-system/internal/dto"
	"alvs-system/internal/entities"
	apperrors "alvs-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEquipmentDefaults(t *testing.T) {
	st := New("ALVS")

	item, err := st.AddEquipment(dto.CreateEquipmentDTO{
		Name:         "Ventilator",
		SerialNumber: "SN-001",
		CustomerID:   "c1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Regexp(t, `^ALVS-\d{6}-[A-Z0-9]{5}$`, item.Code)
	assert.Equal(t, entities.StatusPending, item.Status)
	assert.NotNil(t, item.ServiceRecords)
	assert.Empty(t, item.ServiceRecords)
	assert.False(t, item.EntryDate.IsZero())
}

func TestAddEquipmentFrontInsert(t *testing.T) {
	st := New("ALVS")

	first, err := st.AddEquipment(dto.CreateEquipmentDTO{Name: "Monitor", SerialNumber: "SN-1"})
	require.NoError(t, err)
	second, err := st.AddEquipment(dto.CreateEquipmentDTO{Name: "Infusion Pump", SerialNumber: "SN-2"})
	require.NoError(t, err)

	items := st.Equipments()
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
}

func TestAddEquipmentVisibleImmediately(t *testing.T) {
	st := New("ALVS")

	item, err := st.AddEquipment(dto.CreateEquipmentDTO{Name: "Defibrillator", SerialNumber: "SN-9"})
	require.NoError(t, err)

	found, err := st.FindEquipment(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Code, found.Code)
}

func TestGeneratedCodesAreUnique(t *testing.T) {
	st := New("ALVS")

	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		item, err := st.AddEquipment(dto.CreateEquipmentDTO{
			Name:         "Item",
			SerialNumber: fmt.Sprintf("SN-%d", i),
		})
		require.NoError(t, err)
		_, dup := seen[item.Code]
		require.False(t, dup, "duplicate code %s", item.Code)
		seen[item.Code] = struct{}{}
	}
}

func TestAddServiceRecordAtomicStatusChange(t *testing.T) {
	st := New("ALVS")
	equip, err := st.AddEquipment(dto.CreateEquipmentDTO{Name: "Autoclave", SerialNumber: "SN-5"})
	require.NoError(t, err)

	updated, record, err := st.AddServiceRecord(equip.ID, dto.CreateServiceRecordDTO{
		Description: "replaced heating element",
		NewStatus:   "InProgress",
	})
	require.NoError(t, err)

	assert.Equal(t, entities.StatusInProgress, updated.Status)
	require.Len(t, updated.ServiceRecords, 1)
	assert.Equal(t, record.ID, updated.ServiceRecords[0].ID)
	assert.Equal(t, equip.ID, record.EquipmentID)
	assert.False(t, record.Date.IsZero())
}

func TestAddServiceRecordNewestFirst(t *testing.T) {
	st := New("ALVS")
	equip, err := st.AddEquipment(dto.CreateEquipmentDTO{Name: "X-Ray", SerialNumber: "SN-7"})
	require.NoError(t, err)

	_, first, err := st.AddServiceRecord(equip.ID, dto.CreateServiceRecordDTO{
		Description: "initial inspection",
		NewStatus:   "InProgress",
	})
	require.NoError(t, err)
	updated, second, err := st.AddServiceRecord(equip.ID, dto.CreateServiceRecordDTO{
		Description: "calibration",
		NewStatus:   "Completed",
	})
	require.NoError(t, err)

	require.Len(t, updated.ServiceRecords, 2)
	assert.Equal(t, second.ID, updated.ServiceRecords[0].ID)
	assert.Equal(t, first.ID, updated.ServiceRecords[1].ID)
	assert.Equal(t, entities.StatusCompleted, updated.Status)
}

func TestAddServiceRecordRejectsUnknownStatus(t *testing.T) {
	st := New("ALVS")
	equip, err := st.AddEquipment(dto.CreateEquipmentDTO{Name: "Autoclave", SerialNumber: "SN-6"})
	require.NoError(t, err)

	_, _, err = st.AddServiceRecord(equip.ID, dto.CreateServiceRecordDTO{
		Description: "bad transition",
		NewStatus:   "Exploded",
	})

	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)

	found, err := st.FindEquipment(equip.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, found.Status)
	assert.Empty(t, found.ServiceRecords)
}

func TestAddServiceRecordUnknownEquipment(t *testing.T) {
	st := New("ALVS")

	_, _, err := st.AddServiceRecord("missing-id", dto.CreateServiceRecordDTO{
		Description: "nothing",
		NewStatus:   "Completed",
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipmentNotFound)
	assert.Empty(t, st.Equipments())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	st := New("ALVS")
	equip, err := st.AddEquipment(dto.CreateEquipmentDTO{Name: "Centrifuge", SerialNumber: "SN-3"})
	require.NoError(t, err)

	snapshot := st.Equipments()
	snapshot[0].Name = "mutated"
	snapshot[0].ServiceRecords = append(snapshot[0].ServiceRecords, entities.ServiceRecord{ID: "rogue"})

	found, err := st.FindEquipment(equip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Centrifuge", found.Name)
	assert.Empty(t, found.ServiceRecords)
}

func TestReplaceCollections(t *testing.T) {
	st := New("ALVS")
	_, err := st.AddEquipment(dto.CreateEquipmentDTO{Name: "Old", SerialNumber: "SN-0"})
	require.NoError(t, err)

	st.ReplaceEquipments([]entities.Equipment{{ID: "r1", Name: "Remote Item"}})
	items := st.Equipments()
	require.Len(t, items, 1)
	assert.Equal(t, "r1", items[0].ID)

	st.ReplaceCustomers(nil)
	assert.NotNil(t, st.Customers())
	assert.Empty(t, st.Customers())
}

// Mirrors the workshop flow end to end: pull result installed, new intake,
// then two service visits moving the status forward.
func TestIntakeAndServiceFlow(t *testing.T) {
	st := New("ALVS")
	st.ReplaceCustomers(SeedCustomers())

	customers := st.Customers()
	require.Len(t, customers, 2)

	equip, err := st.AddEquipment(dto.CreateEquipmentDTO{
		Name:         "Cardiac Monitor",
		Brand:        "GE",
		SerialNumber: "CM-2210",
		CustomerID:   customers[0].ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, equip.Status)

	updated, _, err := st.AddServiceRecord(equip.ID, dto.CreateServiceRecordDTO{
		Description: "diagnosed faulty display cable",
		ServiceType: "corrective",
		NewStatus:   "InProgress",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInProgress, updated.Status)

	updated, _, err = st.AddServiceRecord(equip.ID, dto.CreateServiceRecordDTO{
		Description: "cable replaced, burn-in passed",
		ServiceType: "corrective",
		Resolved:    true,
		NewStatus:   "Ready",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusReady, updated.Status)
	assert.Len(t, updated.ServiceRecords, 2)
}
