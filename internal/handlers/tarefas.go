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

// TarefaHandler handles task endpoints.
type TarefaHandler struct {
	tarefaService *services.TarefaService
	logger        *zap.Logger
}

// NewTarefaHandler creates a new TarefaHandler.
func NewTarefaHandler(tarefaService *services.TarefaService, logger *zap.Logger) *TarefaHandler {
	return &TarefaHandler{tarefaService: tarefaService, logger: logger}
}

// List handles GET /tarefas.
func (h *TarefaHandler) List(c *gin.Context) {
	filter := repository.TarefaFilter{
		Pagination: utils.GetPaginationParams(c),
	}

	if v := c.Query("status"); v != "" {
		status := models.StatusTarefa(v)
		if !status.Valida() {
			apierrors.Respond(c, apierrors.NewBadRequest("Status inválido"))
			return
		}
		filter.Status = &status
	}
	if v := c.Query("prioridade"); v != "" {
		prioridade := models.PrioridadeTarefa(v)
		if !prioridade.Valida() {
			apierrors.Respond(c, apierrors.NewBadRequest("Prioridade inválida"))
			return
		}
		filter.Prioridade = &prioridade
	}

	tarefas, total, err := h.tarefaService.List(middleware.GetCaller(c), filter)
	if err != nil {
		h.logger.Error("falha ao listar tarefas", zap.Error(err))
		apierrors.Respond(c, err)
		return
	}

	apierrors.OK(c, dto.ToTarefaListResponse(tarefas, filter.Pagination.Page, filter.Pagination.Limit, total))
}

// Get handles GET /tarefas/:id.
func (h *TarefaHandler) Get(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	tarefa, err := h.tarefaService.Get(middleware.GetCaller(c), id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OK(c, dto.ToTarefaDTO(*tarefa))
}

// Create handles POST /tarefas.
func (h *TarefaHandler) Create(c *gin.Context) {
	req, apiErr := dto.DecodeTarefaCreate(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	tarefa, err := h.tarefaService.Create(middleware.GetCaller(c), req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.Created(c, dto.ToTarefaDTO(*tarefa))
}

// Update handles PUT /tarefas/:id.
func (h *TarefaHandler) Update(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	req, apiErr := dto.DecodeTarefaUpdate(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	tarefa, err := h.tarefaService.Update(middleware.GetCaller(c), id, req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, dto.ToTarefaDTO(*tarefa), "Tarefa atualizada com sucesso")
}

// Delete handles DELETE /tarefas/:id.
func (h *TarefaHandler) Delete(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	if err := h.tarefaService.Delete(middleware.GetCaller(c), id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, nil, "Tarefa removida com sucesso")
}
