package handlers

import (
	"net/http"

	"github.com/rohits-web03/filehub/internal/api/services"
	"github.com/rohits-web03/filehub/internal/utils"
)

// GET /api/v1/share/{id}
// GetSharedFile godoc
// @Summary Retrieve a shared file
// @Description Public lookup of a file and its tags. Each call records a view unless track=false.
// @Tags Share
// @Produce json
// @Param id path string true "File ID"
// @Param track query bool false "Record a view (default true)"
// @Success 200 {object} utils.Payload{data=services.FileDetail} "File retrieved successfully"
// @Failure 404 {object} utils.Payload "File not found"
// @Router /api/v1/share/{id} [get]
func (h *Handler) GetSharedFile(w http.ResponseWriter, r *http.Request) {
	var viewer services.Viewer
	if r.URL.Query().Get("track") != "false" {
		viewer = services.Viewer{
			IPAddress: utils.ClientIP(r),
			UserAgent: r.UserAgent(),
		}
	}

	file, err := h.Files.GetByID(r.Context(), r.PathValue("id"), viewer)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "File retrieved successfully",
		Data:    file,
	})
}
