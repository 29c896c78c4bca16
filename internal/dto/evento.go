package dto

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/validation"
)

// EventoCreateRequest is the event creation payload. Participantes
// chega como array JSON no corpo ou como campo de formulário com uma
// lista codificada em JSON quando a requisição é multipart.
type EventoCreateRequest struct {
	Titulo        string                 `json:"titulo" form:"titulo" validate:"required,min=3,max=100"`
	Descricao     string                 `json:"descricao" form:"descricao" validate:"omitempty,max=2000"`
	Rua           string                 `json:"rua" form:"rua" validate:"required,max=255"`
	Numero        string                 `json:"numero" form:"numero" validate:"required,max=20"`
	Cep           string                 `json:"cep" form:"cep" validate:"required,cep"`
	DataInicio    time.Time              `json:"dataInicio" form:"dataInicio" time_format:"2006-01-02T15:04:05Z07:00" validate:"required"`
	DataFim       time.Time              `json:"dataFim" form:"dataFim" time_format:"2006-01-02T15:04:05Z07:00" validate:"required,gtfield=DataInicio"`
	Visibilidade  models.Visibilidade    `json:"visibilidade" form:"visibilidade" validate:"omitempty,oneof=PUBLICA PRIVADA"`
	Categoria     models.CategoriaEvento `json:"categoria" form:"categoria" validate:"omitempty,oneof=PODCAST ENTREVISTA WORKSHOP ENCONTRO OUTRO"`
	LinkVideo     string                 `json:"linkVideo" form:"linkVideo" validate:"omitempty,url"`
	Participantes []uint64               `json:"participantes" form:"-"`
}

// DecodeEventoCreate decodes and validates the creation payload,
// applying the visibility and category defaults.
func DecodeEventoCreate(c *gin.Context) (*EventoCreateRequest, *apierrors.APIError) {
	var req EventoCreateRequest
	if apiErr := decodeInto(c, &req); apiErr != nil {
		return nil, apiErr
	}

	if isMultipart(c) {
		participantes, apiErr := parseUint64List(c, "participantes")
		if apiErr != nil {
			return nil, apiErr
		}
		if participantes != nil {
			req.Participantes = *participantes
		}
	}

	if req.Visibilidade == "" {
		req.Visibilidade = models.VisibilidadePublica
	}
	if req.Categoria == "" {
		req.Categoria = models.CategoriaOutro
	}

	if details := validation.Struct(req); details != nil {
		return nil, apierrors.NewValidation(details)
	}
	return &req, nil
}

// EventoUpdateRequest is the partial event update payload.
type EventoUpdateRequest struct {
	Titulo        *string                 `json:"titulo" form:"titulo" validate:"omitempty,min=3,max=100"`
	Descricao     *string                 `json:"descricao" form:"descricao" validate:"omitempty,max=2000"`
	Rua           *string                 `json:"rua" form:"rua" validate:"omitempty,max=255"`
	Numero        *string                 `json:"numero" form:"numero" validate:"omitempty,max=20"`
	Cep           *string                 `json:"cep" form:"cep" validate:"omitempty,cep"`
	DataInicio    *time.Time              `json:"dataInicio" form:"dataInicio" time_format:"2006-01-02T15:04:05Z07:00"`
	DataFim       *time.Time              `json:"dataFim" form:"dataFim" time_format:"2006-01-02T15:04:05Z07:00"`
	Visibilidade  *models.Visibilidade    `json:"visibilidade" form:"visibilidade" validate:"omitempty,oneof=PUBLICA PRIVADA"`
	Categoria     *models.CategoriaEvento `json:"categoria" form:"categoria" validate:"omitempty,oneof=PODCAST ENTREVISTA WORKSHOP ENCONTRO OUTRO"`
	LinkVideo     *string                 `json:"linkVideo" form:"linkVideo" validate:"omitempty,url"`
	Participantes *[]uint64               `json:"participantes" form:"-"`
}

// DecodeEventoUpdate decodes and validates the partial update payload.
// A regra de ordem das datas só dispara quando ambas vêm juntas.
func DecodeEventoUpdate(c *gin.Context) (*EventoUpdateRequest, *apierrors.APIError) {
	var req EventoUpdateRequest
	if apiErr := decodeInto(c, &req); apiErr != nil {
		return nil, apiErr
	}

	if isMultipart(c) {
		participantes, apiErr := parseUint64List(c, "participantes")
		if apiErr != nil {
			return nil, apiErr
		}
		req.Participantes = participantes
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

// EventoDTO is the event representation in API responses.
type EventoDTO struct {
	ID            uint64                 `json:"id"`
	Titulo        string                 `json:"titulo"`
	Descricao     string                 `json:"descricao,omitempty"`
	Imagem        string                 `json:"imagem,omitempty"`
	Rua           string                 `json:"rua"`
	Numero        string                 `json:"numero"`
	Cep           string                 `json:"cep"`
	Latitude      *float64               `json:"latitude,omitempty"`
	Longitude     *float64               `json:"longitude,omitempty"`
	DataInicio    time.Time              `json:"dataInicio"`
	DataFim       time.Time              `json:"dataFim"`
	CriadorID     uint64                 `json:"criadorId"`
	Visibilidade  models.Visibilidade    `json:"visibilidade"`
	Categoria     models.CategoriaEvento `json:"categoria"`
	LinkVideo     string                 `json:"linkVideo,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
	Criador       *UsuarioPublicoDTO     `json:"criador,omitempty"`
	Participantes []UsuarioPublicoDTO    `json:"participantes,omitempty"`
}

// ToEventoDTO converts an Evento model to its DTO.
func ToEventoDTO(e models.Evento) EventoDTO {
	dto := EventoDTO{
		ID:           e.ID,
		Titulo:       e.Titulo,
		Descricao:    e.Descricao,
		Imagem:       e.Imagem,
		Rua:          e.Rua,
		Numero:       e.Numero,
		Cep:          e.Cep,
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		DataInicio:   e.DataInicio,
		DataFim:      e.DataFim,
		CriadorID:    e.CriadorID,
		Visibilidade: e.Visibilidade,
		Categoria:    e.Categoria,
		LinkVideo:    e.LinkVideo,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}

	if e.Criador.ID != 0 {
		criador := ToUsuarioPublicoDTO(e.Criador)
		dto.Criador = &criador
	}

	if len(e.Participantes) > 0 {
		dto.Participantes = make([]UsuarioPublicoDTO, len(e.Participantes))
		for i, p := range e.Participantes {
			dto.Participantes[i] = ToUsuarioPublicoDTO(p.Usuario)
		}
	}

	return dto
}

// EventoListResponse is the paginated event listing.
type EventoListResponse struct {
	Eventos    []EventoDTO `json:"eventos"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalCount int64       `json:"totalCount"`
}

// ToEventoListResponse converts events to the listing response.
func ToEventoListResponse(eventos []models.Evento, page, limit int, total int64) EventoListResponse {
	items := make([]EventoDTO, len(eventos))
	for i, e := range eventos {
		items[i] = ToEventoDTO(e)
	}
	return EventoListResponse{
		Eventos:    items,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
	}
}
