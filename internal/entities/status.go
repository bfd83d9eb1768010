package entities

// EquipmentStatus is the workflow state of a piece of equipment. The workflow
// is linear-ish but transitions are not enforced: any status may be set by any
// service-record submission.
type EquipmentStatus string

const (
	StatusPending    EquipmentStatus = "Pending"
	StatusInProgress EquipmentStatus = "InProgress"
	StatusCompleted  EquipmentStatus = "Completed"
	StatusReady      EquipmentStatus = "Ready"
	StatusDelivered  EquipmentStatus = "Delivered"
	StatusCancelled  EquipmentStatus = "Cancelled"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
