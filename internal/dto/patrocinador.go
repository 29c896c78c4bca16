package dto

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/validation"
)

// PatrocinadorCreateRequest is the sponsor creation payload. Links
// chega como array JSON no corpo ou como campo de formulário com uma
// lista codificada em JSON; cada entrada deve ser uma URL absoluta.
type PatrocinadorCreateRequest struct {
	NomeEmpresa string   `json:"nomeEmpresa" form:"nomeEmpresa" validate:"required,min=1,max=255"`
	Links       []string `json:"links" form:"-" validate:"omitempty,dive,url"`
	Telefone    string   `json:"telefone" form:"telefone" validate:"omitempty,telefone"`
	Email       string   `json:"email" form:"email" validate:"omitempty,email"`
	Endereco    string   `json:"endereco" form:"endereco" validate:"omitempty,max=255"`
}

// DecodePatrocinadorCreate decodes and validates the creation payload.
func DecodePatrocinadorCreate(c *gin.Context) (*PatrocinadorCreateRequest, *apierrors.APIError) {
	var req PatrocinadorCreateRequest
	if apiErr := decodeInto(c, &req); apiErr != nil {
		return nil, apiErr
	}

	if isMultipart(c) {
		links, apiErr := parseStringList(c, "links")
		if apiErr != nil {
			return nil, apiErr
		}
		if links != nil {
			req.Links = *links
		}
	}

	if details := validation.Struct(req); details != nil {
		return nil, apierrors.NewValidation(details)
	}
	return &req, nil
}

// PatrocinadorUpdateRequest is the partial sponsor update payload.
type PatrocinadorUpdateRequest struct {
	NomeEmpresa *string   `json:"nomeEmpresa" form:"nomeEmpresa" validate:"omitempty,min=1,max=255"`
	Links       *[]string `json:"links" form:"-" validate:"omitempty,dive,url"`
	Telefone    *string   `json:"telefone" form:"telefone" validate:"omitempty,telefone"`
	Email       *string   `json:"email" form:"email" validate:"omitempty,email"`
	Endereco    *string   `json:"endereco" form:"endereco" validate:"omitempty,max=255"`
}

// DecodePatrocinadorUpdate decodes and validates the partial update payload.
func DecodePatrocinadorUpdate(c *gin.Context) (*PatrocinadorUpdateRequest, *apierrors.APIError) {
	var req PatrocinadorUpdateRequest
	if apiErr := decodeInto(c, &req); apiErr != nil {
		return nil, apiErr
	}

	if isMultipart(c) {
		links, apiErr := parseStringList(c, "links")
		if apiErr != nil {
			return nil, apiErr
		}
		req.Links = links
	}

	if details := validation.Struct(req); details != nil {
		return nil, apierrors.NewValidation(details)
	}
	return &req, nil
}

// PatrocinadorDTO is the sponsor representation in API responses.
type PatrocinadorDTO struct {
	ID          uint64    `json:"id"`
	NomeEmpresa string    `json:"nomeEmpresa"`
	Links       []string  `json:"links"`
	Telefone    string    `json:"telefone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Endereco    string    `json:"endereco,omitempty"`
	Imagem      string    `json:"imagem"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToPatrocinadorDTO converts a Patrocinador model to its DTO.
func ToPatrocinadorDTO(p models.Patrocinador) PatrocinadorDTO {
	links := p.Links
	if links == nil {
		links = []string{}
	}
	return PatrocinadorDTO{
		ID:          p.ID,
		NomeEmpresa: p.NomeEmpresa,
		Links:       links,
		Telefone:    p.Telefone,
		Email:       p.Email,
		Endereco:    p.Endereco,
		Imagem:      p.Imagem,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PatrocinadorListResponse is the paginated sponsor listing.
type PatrocinadorListResponse struct {
	Patrocinadores []PatrocinadorDTO `json:"patrocinadores"`
	Page           int               `json:"page"`
	Limit          int               `json:"limit"`
	TotalCount     int64             `json:"totalCount"`
}

// ToPatrocinadorListResponse converts sponsors to the listing response.
func ToPatrocinadorListResponse(patrocinadores []models.Patrocinador, page, limit int, total int64) PatrocinadorListResponse {
	items := make([]PatrocinadorDTO, len(patrocinadores))
	for i, p := range patrocinadores {
		items[i] = ToPatrocinadorDTO(p)
	}
	return PatrocinadorListResponse{
		Patrocinadores: items,
		Page:           page,
		Limit:          limit,
		TotalCount:     total,
	}
}
