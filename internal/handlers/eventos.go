package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/dto"
	"github.com/falaoperador/admin-api/internal/middleware"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/repository"
	"github.com/falaoperador/admin-api/internal/services"
	"github.com/falaoperador/admin-api/internal/utils"
)

// EventoHandler handles event endpoints.
type EventoHandler struct {
	eventoService *services.EventoService
	logger        *zap.Logger
}

// NewEventoHandler creates a new EventoHandler.
func NewEventoHandler(eventoService *services.EventoService, logger *zap.Logger) *EventoHandler {
	return &EventoHandler{eventoService: eventoService, logger: logger}
}

// List handles GET /eventos. Filtros de visibilidade e categoria só
// têm efeito para administradores; o service descarta os demais.
func (h *EventoHandler) List(c *gin.Context) {
	filter := repository.EventoFilter{
		Pagination: utils.GetPaginationParams(c),
	}

	if v := c.Query("visibilidade"); v != "" {
		visibilidade := models.Visibilidade(v)
		if visibilidade != models.VisibilidadePublica && visibilidade != models.VisibilidadePrivada {
			apierrors.Respond(c, apierrors.NewBadRequest("Visibilidade inválida"))
			return
		}
		filter.Visibilidade = &visibilidade
	}
	if v := c.Query("categoria"); v != "" {
		categoria := models.CategoriaEvento(v)
		if !categoria.Valida() {
			apierrors.Respond(c, apierrors.NewBadRequest("Categoria inválida"))
			return
		}
		filter.Categoria = &categoria
	}

	eventos, total, err := h.eventoService.List(middleware.GetCaller(c), filter)
	if err != nil {
		h.logger.Error("falha ao listar eventos", zap.Error(err))
		apierrors.Respond(c, err)
		return
	}

	apierrors.OK(c, dto.ToEventoListResponse(eventos, filter.Pagination.Page, filter.Pagination.Limit, total))
}

// Get handles GET /eventos/:id.
func (h *EventoHandler) Get(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	evento, err := h.eventoService.Get(middleware.GetCaller(c), id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OK(c, dto.ToEventoDTO(*evento))
}

// Create handles POST /eventos.
func (h *EventoHandler) Create(c *gin.Context) {
	req, apiErr := dto.DecodeEventoCreate(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	imagem, _ := c.FormFile("imagem")

	evento, err := h.eventoService.Create(c.Request.Context(), middleware.GetCaller(c), req, imagem)
	if err != nil {
		h.logError("criar evento", err)
		apierrors.Respond(c, err)
		return
	}

	apierrors.Created(c, dto.ToEventoDTO(*evento))
}

// Update handles PUT /eventos/:id.
func (h *EventoHandler) Update(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	req, apiErr := dto.DecodeEventoUpdate(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	imagem, _ := c.FormFile("imagem")

	evento, err := h.eventoService.Update(c.Request.Context(), middleware.GetCaller(c), id, req, imagem)
	if err != nil {
		h.logError("atualizar evento", err)
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, dto.ToEventoDTO(*evento), "Evento atualizado com sucesso")
}

// Delete handles DELETE /eventos/:id.
func (h *EventoHandler) Delete(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	if err := h.eventoService.Delete(middleware.GetCaller(c), id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, nil, "Evento removido com sucesso")
}

func (h *EventoHandler) logError(op string, err error) {
	if _, ok := err.(*apierrors.APIError); ok {
		return
	}
	h.logger.Error("falha em evento", zap.String("op", op), zap.Error(err))
}
