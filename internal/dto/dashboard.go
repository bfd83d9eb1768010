package dto

// DashboardStatsDTO mirrors the status breakdown and recent-activity panels.
type DashboardStatsDTO struct {
	TotalEquipments int `json:"totalEquipments"`
	Pending         int `json:"pending"`
	InProgress      int `json:"inProgress"`
	Completed       int `json:"completed"`

	RecentServices []RecentServiceDTO `json:"recentServices"`
}

// RecentServiceDTO is a service record flattened with its equipment identity.
type RecentServiceDTO struct {
	ID            string `json:"id"`
	EquipmentName string `json:"equipmentName"`
	EquipmentCode string `json:"equipmentCode"`
	Date          string `json:"date"`
	Description   string `json:"description"`
}
