package store

import "alvs-system/internal/entities"

// SeedCustomers returns the built-in demo customers shown on a cold start
// with an empty mirror. They match the records the company used while the
// remote backend was being provisioned.
func SeedCustomers() []entities.Customer {
	return []entities.Customer{
		{
			ID:      "c1",
			Name:    "Hospital das Clínicas",
			TaxID:   "12.345.678/0001-90",
			Email:   "contato@hc.org",
			Phone:   "(11) 98888-7777",
			Address: "Av. Paulista, 1000",
		},
		{
			ID:      "c2",
			Name:    "Clínica Saúde Vital",
			TaxID:   "98.765.432/0001-21",
			Email:   "adm@saudevital.com",
			Phone:   "(11) 97777-6666",
			Address: "Rua das Flores, 45",
		},
	}
}
