package dto

type CreateEquipmentDTO struct {
	Name         string `json:"name" validate:"required"`
	Brand        string `json:"brand" validate:"omitempty"`
	Model        string `json:"model" validate:"omitempty"`
	Manufacturer string `json:"manufacturer" validate:"omitempty"`
	SerialNumber string `json:"serialNumber" validate:"required"`
	Observations string `json:"observations" validate:"omitempty"`
	CustomerID   string `json:"customerId" validate:"omitempty"`
	SupplierID   string `json:"supplierId" validate:"omitempty"`
}

type CreateServiceRecordDTO struct {
	Description  string `json:"description" validate:"required"`
	ServiceType  string `json:"serviceType" validate:"omitempty"`
	Resolution   string `json:"resolution" validate:"omitempty"`
	Resolved     bool   `json:"resolved"`
	TechnicianID string `json:"technicianId" validate:"omitempty"`

	// NewStatus is applied to the equipment in the same step as the record.
	NewStatus string `json:"newStatus" validate:"required,oneof=Pending InProgress Completed Ready Delivered Cancelled"`
}
