package handlers

import (
	"net/http"
	"strconv"

	"github.com/rohits-web03/filehub/internal/api/services"
	"github.com/rohits-web03/filehub/internal/utils"
)

// POST /api/v1/files
// CreateFile godoc
// @Summary Register an uploaded file
// @Description Stores metadata for an object already uploaded through a presigned URL and links the given tags.
// @Tags Files
// @Accept json
// @Produce json
// @Param body body services.CreateFileInput true "File metadata"
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/files [post]
func (h *Handler) CreateFile(w http.ResponseWriter, r *http.Request) {
	var input services.CreateFileInput
	if !decode(w, r, &input) {
		return
	}

	file, err := h.Files.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "File created successfully",
		Data:    file,
	})
}

// GET /api/v1/files
// ListFiles godoc
// @Summary List files
// @Description Returns a page of files, newest first, with their tags and view counts.
// @Tags Files
// @Produce json
// @Param limit query int false "Page size, clamped to 1-100 (default 10)"
// @Param cursor query int false "Number of rows to skip"
// @Success 200 {object} utils.Payload{data=services.FilePage}
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", services.DefaultPageSize)
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	// Out-of-range sizes are clamped to [1, MaxPageSize] rather than rejected.
	limit = max(limit, 1)
	cursor, err := queryInt(r, "cursor", 0)
	if err != nil || cursor < 0 {
		utils.Fail(w, http.StatusBadRequest, "cursor must be a non-negative integer")
		return
	}

	page, err := h.Files.List(r.Context(), limit, cursor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Files retrieved successfully",
		Data:    page,
	})
}

// PATCH /api/v1/files/{id}/position
// UpdateFilePosition godoc
// @Summary Reorder a file
// @Tags Files
// @Accept json
// @Produce json
// @Param id path string true "File ID"
// @Param body body object{position=int} true "New position"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/files/{id}/position [patch]
func (h *Handler) UpdateFilePosition(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Position *int `json:"position"`
	}
	if !decode(w, r, &input) {
		return
	}
	if input.Position == nil {
		utils.Fail(w, http.StatusBadRequest, "position is required")
		return
	}

	file, err := h.Files.UpdatePosition(r.Context(), r.PathValue("id"), *input.Position)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Position updated",
		Data:    file,
	})
}

// POST /api/v1/files/{id}/tags
// AddFileTags godoc
// @Summary Attach tags to a file
// @Tags Files
// @Accept json
// @Produce json
// @Param id path string true "File ID"
// @Param body body object{tagIds=[]string} true "Tag IDs"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/files/{id}/tags [post]
func (h *Handler) AddFileTags(w http.ResponseWriter, r *http.Request) {
	var input struct {
		TagIDs []string `json:"tagIds"`
	}
	if !decode(w, r, &input) {
		return
	}

	if err := h.Files.AddTags(r.Context(), r.PathValue("id"), input.TagIDs); err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Tags added",
		Data:    true,
	})
}

// DELETE /api/v1/files/{id}
// DeleteFile godoc
// @Summary Delete a file
// @Description Deletes a file owned by the caller together with its tag links and views.
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/files/{id} [delete]
func (h *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	file, err := h.Files.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "File deleted",
		Data:    file,
	})
}

// GET /api/v1/files/{id}/stats
// GetFileStats godoc
// @Summary File statistics
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} utils.Payload{data=services.FileStats}
// @Failure 404 {object} utils.Payload
// @Router /api/v1/files/{id}/stats [get]
func (h *Handler) GetFileStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Files.GetStats(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Stats retrieved successfully",
		Data:    stats,
	})
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
