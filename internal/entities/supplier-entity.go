package entities

// Supplier is local-only data: the remote API has no supplier endpoints, so
// suppliers live in the entity store and the persistence mirror only.
type Supplier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TaxID       string `json:"taxId"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	EquipmentID string `json:"equipmentId,omitempty"`
}
