package dto

type CreateCustomerDTO struct {
	Name    string `json:"name" validate:"required"`
	TaxID   string `json:"taxId" validate:"required,tax_id"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,phone_br"`
	Address string `json:"address" validate:"omitempty"`
}
