package handlers

import (
	"net/http"

	"github.com/rohits-web03/filehub/internal/utils"
)

type tagInput struct {
	Name string `json:"name"`
}

// GET /api/v1/tags
// ListTags godoc
// @Summary List tags
// @Tags Tags
// @Produce json
// @Success 200 {object} utils.Payload{data=[]models.Tag}
// @Failure 401 {object} utils.Payload
// @Router /api/v1/tags [get]
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Tags.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Tags retrieved successfully",
		Data:    tags,
	})
}

// GET /api/v1/tags/options
// ListTagOptions godoc
// @Summary Tags as label/value options
// @Tags Tags
// @Produce json
// @Success 200 {object} utils.Payload{data=[]services.TagOption}
// @Router /api/v1/tags/options [get]
func (h *Handler) ListTagOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.Tags.Options(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Tag options retrieved successfully",
		Data:    options,
	})
}

// POST /api/v1/tags
// CreateTag godoc
// @Summary Create a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param body body object{name=string} true "Tag"
// @Success 201 {object} utils.Payload{data=models.Tag}
// @Failure 400 {object} utils.Payload
// @Router /api/v1/tags [post]
func (h *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var input tagInput
	if !decode(w, r, &input) {
		return
	}

	tag, err := h.Tags.Create(r.Context(), input.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Tag created",
		Data:    tag,
	})
}

// PATCH /api/v1/tags/{id}
// UpdateTag godoc
// @Summary Rename a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Param body body object{name=string} true "Tag"
// @Success 200 {object} utils.Payload{data=models.Tag}
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/tags/{id} [patch]
func (h *Handler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	var input tagInput
	if !decode(w, r, &input) {
		return
	}

	tag, err := h.Tags.Update(r.Context(), r.PathValue("id"), input.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Tag updated",
		Data:    tag,
	})
}

// DELETE /api/v1/tags/{id}
// DeleteTag godoc
// @Summary Delete a tag
// @Description Removes the tag from every file it is attached to.
// @Tags Tags
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} utils.Payload{data=models.Tag}
// @Failure 404 {object} utils.Payload
// @Router /api/v1/tags/{id} [delete]
func (h *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.Tags.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Tag deleted",
		Data:    tag,
	})
}
