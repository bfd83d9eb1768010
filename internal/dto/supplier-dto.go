package dto

type CreateSupplierDTO struct {
	Name        string `json:"name" validate:"required"`
	TaxID       string `json:"taxId" validate:"required,tax_id"`
	ContactName string `json:"contactName" validate:"omitempty"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty,phone_br"`
	EquipmentID string `json:"equipmentId" validate:"omitempty"`
}
