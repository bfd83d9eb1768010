package controllers

import (
	"net/http"

	"alvs-system/internal/dto"
	"alvs-system/internal/store"
	syncer "alvs-system/internal/sync"
	"alvs-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SyncController struct {
	store        *store.Store
	synchronizer *syncer.Synchronizer
	logger       *zap.Logger
}

func NewSyncController(st *store.Store, synchronizer *syncer.Synchronizer, logger *zap.Logger) *SyncController {
	return &SyncController{
		store:        st,
		synchronizer: synchronizer,
		logger:       logger,
	}
}

func (c *SyncController) GetStatus(ctx echo.Context) error {
	res := dto.SyncStatusDTO{
		State:      string(c.synchronizer.State()),
		Equipments: len(c.store.Equipments()),
		Customers:  len(c.store.Customers()),
		Suppliers:  len(c.store.Suppliers()),
	}

	return utils.SuccessResponse(ctx, res, "sync status", http.StatusOK)
}

// Resync runs a full pull synchronously and reports the state it lands in.
// Even a failed pull answers 200: the store stays usable on the mirror copy,
// and the body carries state "offline".
func (c *SyncController) Resync(ctx echo.Context) error {
	state := c.synchronizer.Pull(ctx.Request().Context())

	res := dto.SyncStatusDTO{
		State:      string(state),
		Equipments: len(c.store.Equipments()),
		Customers:  len(c.store.Customers()),
		Suppliers:  len(c.store.Suppliers()),
	}

	return utils.SuccessResponse(ctx, res, "resynchronized", http.StatusOK)
}
