package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/dto"
	"github.com/falaoperador/admin-api/internal/middleware"
	"github.com/falaoperador/admin-api/internal/services"
	"github.com/falaoperador/admin-api/internal/utils"
)

// PatrocinadorHandler handles sponsor endpoints.
type PatrocinadorHandler struct {
	patrocinadorService *services.PatrocinadorService
	logger              *zap.Logger
}

// NewPatrocinadorHandler creates a new PatrocinadorHandler.
func NewPatrocinadorHandler(patrocinadorService *services.PatrocinadorService, logger *zap.Logger) *PatrocinadorHandler {
	return &PatrocinadorHandler{patrocinadorService: patrocinadorService, logger: logger}
}

// List handles GET /patrocinadores.
func (h *PatrocinadorHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	patrocinadores, total, err := h.patrocinadorService.List(params)
	if err != nil {
		h.logger.Error("falha ao listar patrocinadores", zap.Error(err))
		apierrors.Respond(c, err)
		return
	}

	apierrors.OK(c, dto.ToPatrocinadorListResponse(patrocinadores, params.Page, params.Limit, total))
}

// Get handles GET /patrocinadores/:id.
func (h *PatrocinadorHandler) Get(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	patrocinador, err := h.patrocinadorService.Get(id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OK(c, dto.ToPatrocinadorDTO(*patrocinador))
}

// Create handles POST /patrocinadores.
func (h *PatrocinadorHandler) Create(c *gin.Context) {
	req, apiErr := dto.DecodePatrocinadorCreate(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	imagem, _ := c.FormFile("imagem")

	patrocinador, err := h.patrocinadorService.Create(middleware.GetCaller(c), req, imagem)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.Created(c, dto.ToPatrocinadorDTO(*patrocinador))
}

// Update handles PUT /patrocinadores/:id.
func (h *PatrocinadorHandler) Update(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	req, apiErr := dto.DecodePatrocinadorUpdate(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	imagem, _ := c.FormFile("imagem")

	patrocinador, err := h.patrocinadorService.Update(middleware.GetCaller(c), id, req, imagem)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, dto.ToPatrocinadorDTO(*patrocinador), "Patrocinador atualizado com sucesso")
}

// Delete handles DELETE /patrocinadores/:id.
func (h *PatrocinadorHandler) Delete(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	if err := h.patrocinadorService.Delete(middleware.GetCaller(c), id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, nil, "Patrocinador removido com sucesso")
}
