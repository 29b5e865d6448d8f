package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beleza-studio/internal/avatar"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/httpresp"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/repository"
	"github.com/BruksfildServices01/beleza-studio/internal/middleware"
	"github.com/BruksfildServices01/beleza-studio/internal/usecase/staff"
)

// ======================================================
// HANDLER
// ======================================================

type SpecialistHandler struct {
	specialists *staff.Specialists
	avatars     *avatar.Store
}

func NewSpecialistHandler(specialists *staff.Specialists, avatars *avatar.Store) *SpecialistHandler {
	return &SpecialistHandler{specialists: specialists, avatars: avatars}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSpecialistRequest struct {
	Name        string   `json:"name" binding:"required"`
	Role        string   `json:"role"`
	Avatar      string   `json:"avatar"`
	Specialties []string `json:"specialties"`
}

type UpdateSpecialistRequest struct {
	Name        *string  `json:"name"`
	Role        *string  `json:"role"`
	Avatar      *string  `json:"avatar"`
	Specialties []string `json:"specialties"`
}

// ======================================================
// CRUD
// ======================================================

func (h *SpecialistHandler) List(c *gin.Context) {
	list, err := h.specialists.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *SpecialistHandler) Create(c *gin.Context) {
	var req CreateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sp, err := h.specialists.Add(c.Request.Context(), middleware.UserID(c), repository.NewSpecialist{
		Name:        req.Name,
		Role:        req.Role,
		Avatar:      req.Avatar,
		Specialties: req.Specialties,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (h *SpecialistHandler) Update(c *gin.Context) {
	var req UpdateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sp, err := h.specialists.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), repository.SpecialistPatch{
		Name:        req.Name,
		Role:        req.Role,
		Avatar:      req.Avatar,
		Specialties: req.Specialties,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, sp)
}

func (h *SpecialistHandler) Delete(c *gin.Context) {
	if err := h.specialists.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// AVATAR
// ======================================================

// UploadAvatar: PUT /me/specialists/:id/avatar (multipart, campo "file").
func (h *SpecialistHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie a imagem no campo file.")
		return
	}
	if fh.Size > avatar.MaxUpload {
		writeError(c, avatar.ErrTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, avatar.MaxUpload+1))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(raw) > avatar.MaxUpload {
		writeError(c, avatar.ErrTooLarge)
		return
	}

	sp, err := h.specialists.SetAvatar(c.Request.Context(), middleware.UserID(c), c.Param("id"), raw)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, sp)
}

// ServeAvatar: GET /public/avatars/:id
func (h *SpecialistHandler) ServeAvatar(c *gin.Context) {
	img, err := h.avatars.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "image/webp", img)
}
