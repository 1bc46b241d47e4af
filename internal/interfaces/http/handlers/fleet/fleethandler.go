package fleet

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skymaint/internal/application/maintenance/usecases"
	"skymaint/internal/shared/errors"
	"skymaint/internal/shared/logger"
	"skymaint/internal/shared/utils"
)

type FleetHandler struct {
	listStatusesUC usecases.ListStatusesExecutor
	logger         logger.Interface
}

func NewFleetHandler(listStatusesUC usecases.ListStatusesExecutor) *FleetHandler {
	return &FleetHandler{
		listStatusesUC: listStatusesUC,
		logger:         logger.NewLogger(),
	}
}

// ListStatuses handles GET /api/fleet/statuses. The optional alert_ratio
// query overrides the configured escalation ratio for this request only.
func (h *FleetHandler) ListStatuses(c *gin.Context) {
	ownerID, err := utils.OwnerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListStatusesQuery{OwnerID: ownerID}

	if raw := c.Query("alert_ratio"); raw != "" {
		ratio, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid alert_ratio parameter"))
			return
		}
		query.AlertRatio = &ratio
	}

	result, err := h.listStatusesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Statuses)
}
