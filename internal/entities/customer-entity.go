package entities

// Customer is a hospital unit that owns equipment.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"taxId"` // CPF/CNPJ
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
