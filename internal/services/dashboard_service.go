package services

import (
	"context"
	"sort"
	"time"

	"alvs-system/internal/dto"
	"alvs-system/internal/entities"
	"alvs-system/internal/store"

	"go.uber.org/zap"
)

const recentServicesLimit = 5

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewDashboardService(st *store.Store, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		store:  st,
		logger: logger,
	}
}

// GetStats computes the status breakdown of the fleet and the most recent
// service records across all equipment.
func (s *DashboardService) GetStats(ctx context.Context) (dto.DashboardStatsDTO, error) {
	equipments := s.store.Equipments()

	stats := dto.DashboardStatsDTO{
		TotalEquipments: len(equipments),
		RecentServices:  []dto.RecentServiceDTO{},
	}

	type flatRecord struct {
		record entities.ServiceRecord
		name   string
		code   string
	}
	var all []flatRecord

	for _, equip := range equipments {
		switch equip.Status {
		case entities.StatusPending:
			stats.Pending++
		case entities.StatusInProgress:
			stats.InProgress++
		case entities.StatusCompleted:
			stats.Completed++
		}
		for _, record := range equip.ServiceRecords {
			all = append(all, flatRecord{record: record, name: equip.Name, code: equip.Code})
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].record.Date.After(all[j].record.Date)
	})
	if len(all) > recentServicesLimit {
		all = all[:recentServicesLimit]
	}

	for _, entry := range all {
		stats.RecentServices = append(stats.RecentServices, dto.RecentServiceDTO{
			ID:            entry.record.ID,
			EquipmentName: entry.name,
			EquipmentCode: entry.code,
			Date:          entry.record.Date.Format(time.RFC3339),
			Description:   entry.record.Description,
		})
	}

	return stats, nil
}
