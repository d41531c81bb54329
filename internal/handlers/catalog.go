package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/models"
)

// EquipmentLister reads the full equipment catalog.
type EquipmentLister interface {
	List(ctx context.Context) ([]models.EquipmentDB, error)
}

// TargetLister reads the full target-muscle catalog.
type TargetLister interface {
	List(ctx context.Context) ([]models.TargetDB, error)
}

// CatalogResponse represents the seeded reference catalogs
// swagger:model CatalogResponse
type CatalogResponse struct {
	// Equipment choices, name-ordered
	Equipment []models.EquipmentDB `json:"equipment"`

	// Target-muscle choices, name-ordered
	Targets []models.TargetDB `json:"targets"`
}

// NewCatalogHandler returns an HTTP handler listing the equipment and target
// catalogs. The settings page uses it to render preference choices by name.
// @Summary Reference catalogs
// @Description Returns the seeded equipment and target-muscle catalogs
// @Tags catalog
// @Produce json
// @Success 200 {object} handlers.CatalogResponse "Seeded catalogs"
// @Router /catalog [get]
func NewCatalogHandler(equipment EquipmentLister, targets TargetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		equipmentRows, err := equipment.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		targetRows, err := targets.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		resp := CatalogResponse{
			Equipment: equipmentRows,
			Targets:   targetRows,
		}
		if resp.Equipment == nil {
			resp.Equipment = []models.EquipmentDB{}
		}
		if resp.Targets == nil {
			resp.Targets = []models.TargetDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
