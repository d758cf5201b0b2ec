package handlers

import (
	"net/http"

	"github.com/rohits-web03/filehub/internal/utils"
)

// POST /api/v1/storage/presign
// PresignUpload godoc
// @Summary Get a presigned upload URL
// @Description Returns a time-bounded PUT URL for "<directoryPath>/<uuid>-<key>" and the public URL the object will have.
// @Tags Storage
// @Accept json
// @Produce json
// @Param body body object{key=string,directoryPath=string} true "Object name and optional directory"
// @Success 200 {object} utils.Payload{data=services.PresignedUpload}
// @Failure 400 {object} utils.Payload
// @Failure 429 {object} utils.Payload
// @Router /api/v1/storage/presign [post]
func (h *Handler) PresignUpload(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Key           string `json:"key"`
		DirectoryPath string `json:"directoryPath,omitempty"`
	}
	if !decode(w, r, &input) {
		return
	}

	upload, err := h.Uploads.StandardUploadURL(r.Context(), input.Key, input.DirectoryPath)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Presigned URL generated",
		Data:    upload,
	})
}
