package dto

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/validation"
)

// TarefaCreateRequest is the task creation payload.
type TarefaCreateRequest struct {
	Titulo     string                  `json:"titulo" validate:"required,min=3,max=100"`
	Descricao  string                  `json:"descricao" validate:"omitempty,max=2000"`
	Status     models.StatusTarefa     `json:"status" validate:"omitempty,oneof=PENDENTE EM_PROGRESSO CONCLUIDA CANCELADA"`
	Prioridade models.PrioridadeTarefa `json:"prioridade" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
	Publica    *bool                   `json:"publica"`
	DataInicio *time.Time              `json:"dataInicio"`
	DataFim    *time.Time              `json:"dataFim"`
}

// DecodeTarefaCreate decodes and validates the creation payload,
// applying the status and priority defaults.
func DecodeTarefaCreate(c *gin.Context) (*TarefaCreateRequest, *apierrors.APIError) {
	var req TarefaCreateRequest
	if apiErr := decodeInto(c, &req); apiErr != nil {
		return nil, apiErr
	}

	if req.Status == "" {
		req.Status = models.StatusPendente
	}
	if req.Prioridade == "" {
		req.Prioridade = models.PrioridadeMedia
	}

	if details := validation.Struct(req); details != nil {
		return nil, apierrors.NewValidation(details)
	}

	if req.DataInicio != nil && req.DataFim != nil && !req.DataFim.After(*req.DataInicio) {
		return nil, apierrors.NewValidation(map[string][]string{
			"dataFim": {"Deve ser posterior a dataInicio"},
		})
	}

	return &req, nil
}

// TarefaUpdateRequest is the partial task update payload.
type TarefaUpdateRequest struct {
	Titulo     *string                  `json:"titulo" validate:"omitempty,min=3,max=100"`
	Descricao  *string                  `json:"descricao" validate:"omitempty,max=2000"`
	Status     *models.StatusTarefa     `json:"status" validate:"omitempty,oneof=PENDENTE EM_PROGRESSO CONCLUIDA CANCELADA"`
	Prioridade *models.PrioridadeTarefa `json:"prioridade" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
	Publica    *bool                    `json:"publica"`
	DataInicio *time.Time               `json:"dataInicio"`
	DataFim    *time.Time               `json:"dataFim"`
}

// DecodeTarefaUpdate decodes and validates the partial update payload.
func DecodeTarefaUpdate(c *gin.Context) (*TarefaUpdateRequest, *apierrors.APIError) {
	var req TarefaUpdateRequest
	if apiErr := decodeInto(c, &req); apiErr != nil {
		return nil, apiErr
	}

	if details := validation.Struct(req); details != nil {
		return nil, apierrors.NewValidation(details)
	}

	if req.DataInicio != nil && req.DataFim != nil && !req.DataFim.After(*req.DataInicio) {
		return nil, apierrors.NewValidation(map[string][]string{
			"dataFim": {"Deve ser posterior a dataInicio"},
		})
	}

	return &req, nil
}

// TarefaDTO is the task representation in API responses.
type TarefaDTO struct {
	ID         uint64                  `json:"id"`
	Titulo     string                  `json:"titulo"`
	Descricao  string                  `json:"descricao,omitempty"`
	Status     models.StatusTarefa     `json:"status"`
	Prioridade models.PrioridadeTarefa `json:"prioridade"`
	Publica    bool                    `json:"publica"`
	DataInicio *time.Time              `json:"dataInicio,omitempty"`
	DataFim    *time.Time              `json:"dataFim,omitempty"`
	UsuarioID  uint64                  `json:"usuarioId"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
	Usuario    *UsuarioPublicoDTO      `json:"usuario,omitempty"`
}

// ToTarefaDTO converts a Tarefa model to its DTO.
func ToTarefaDTO(t models.Tarefa) TarefaDTO {
	dto := TarefaDTO{
		ID:         t.ID,
		Titulo:     t.Titulo,
		Descricao:  t.Descricao,
		Status:     t.Status,
		Prioridade: t.Prioridade,
		Publica:    t.Publica,
		DataInicio: t.DataInicio,
		DataFim:    t.DataFim,
		UsuarioID:  t.UsuarioID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}

	if t.Usuario.ID != 0 {
		usuario := ToUsuarioPublicoDTO(t.Usuario)
		dto.Usuario = &usuario
	}

	return dto
}

// TarefaListResponse is the paginated task listing.
type TarefaListResponse struct {
	Tarefas    []TarefaDTO `json:"tarefas"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalCount int64       `json:"totalCount"`
}

// ToTarefaListResponse converts tasks to the listing response.
func ToTarefaListResponse(tarefas []models.Tarefa, page, limit int, total int64) TarefaListResponse {
	items := make([]TarefaDTO, len(tarefas))
	for i, t := range tarefas {
		items[i] = ToTarefaDTO(t)
	}
	return TarefaListResponse{
		Tarefas:    items,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
	}
}
