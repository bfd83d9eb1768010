package entities

import "time"

// ServiceRecord is a maintenance intervention on a piece of equipment.
// Records are immutable once created: there is no update or delete operation.
type ServiceRecord struct {
	ID           string    `json:"id"`
	EquipmentID  string    `json:"equipmentId"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	ServiceType  string    `json:"serviceType"`
	Resolution   string    `json:"resolution"`
	Resolved     bool      `json:"resolved"`
	TechnicianID string    `json:"technicianId"`
}
