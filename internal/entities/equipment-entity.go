package entities

import "time"

// Equipment JSON field names follow the remote wire format (api.php).
type Equipment struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"` // business-unique, generated from the brand prefix
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Manufacturer string          `json:"manufacturer"`
	SerialNumber string          `json:"serialNumber"`
	EntryDate    time.Time       `json:"entryDate"`
	Observations string          `json:"observations"`
	Status       EquipmentStatus `json:"status"`
	CustomerID   string          `json:"customerId"`
	SupplierID   string          `json:"supplierId,omitempty"`

	// ServiceRecords is kept ordered newest first.
	ServiceRecords []ServiceRecord `json:"serviceRecords"`
}
