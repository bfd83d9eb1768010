package dto

// SyncStatusDTO reports the synchronizer's current state to the UI, so it can
// show an "offline" badge or a spinner without blocking on the network.
type SyncStatusDTO struct {
	State      string `json:"state"`
	Equipments int    `json:"equipments"`
	Customers  int    `json:"customers"`
	Suppliers  int    `json:"suppliers"`
}
