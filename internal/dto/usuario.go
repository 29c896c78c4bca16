package dto

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/validation"
)

// RegistroRequest is the signup payload.
type RegistroRequest struct {
	Nome           string     `json:"nome" validate:"required,min=2,max=100"`
	Sobrenome      string     `json:"sobrenome" validate:"required,min=2,max=100"`
	Email          string     `json:"email" validate:"required,email"`
	Senha          string     `json:"senha" validate:"required,min=8"`
	Telefone       string     `json:"telefone" validate:"omitempty,telefone"`
	DataNascimento *time.Time `json:"dataNascimento"`
}

// DecodeRegistro decodes and validates the signup payload.
func DecodeRegistro(c *gin.Context) (*RegistroRequest, *apierrors.APIError) {
	var req RegistroRequest
	if apiErr := decodeInto(c, &req); apiErr != nil {
		return nil, apiErr
	}
	if details := validation.Struct(req); details != nil {
		return nil, apierrors.NewValidation(details)
	}
	return &req, nil
}

// LoginRequest is the credential login payload.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// DecodeLogin decodes and validates the login payload.
func DecodeLogin(c *gin.Context) (*LoginRequest, *apierrors.APIError) {
	var req LoginRequest
	if apiErr := decodeInto(c, &req); apiErr != nil {
		return nil, apiErr
	}
	if details := validation.Struct(req); details != nil {
		return nil, apierrors.NewValidation(details)
	}
	return &req, nil
}

// UsuarioUpdateRequest is the profile update payload. Every field is
// optional; only supplied fields are applied.
type UsuarioUpdateRequest struct {
	Nome           *string      `json:"nome" form:"nome" validate:"omitempty,min=2,max=100"`
	Sobrenome      *string      `json:"sobrenome" form:"sobrenome" validate:"omitempty,min=2,max=100"`
	Telefone       *string      `json:"telefone" form:"telefone" validate:"omitempty,telefone"`
	DataNascimento *time.Time   `json:"dataNascimento" form:"dataNascimento" time_format:"2006-01-02T15:04:05Z07:00"`
	Role           *models.Role `json:"role" form:"role" validate:"omitempty,oneof=ADMIN USUARIO"`
	Verificado     *bool        `json:"verificado" form:"verificado"`
}

// DecodeUsuarioUpdate decodes and validates the profile update payload.
func DecodeUsuarioUpdate(c *gin.Context) (*UsuarioUpdateRequest, *apierrors.APIError) {
	var req UsuarioUpdateRequest
	if apiErr := decodeInto(c, &req); apiErr != nil {
		return nil, apiErr
	}
	if details := validation.Struct(req); details != nil {
		return nil, apierrors.NewValidation(details)
	}
	return &req, nil
}

// SenhaUpdateRequest is the credential rotation payload.
type SenhaUpdateRequest struct {
	SenhaAtual string `json:"senhaAtual" validate:"required"`
	NovaSenha  string `json:"novaSenha" validate:"required,min=8"`
}

// DecodeSenhaUpdate decodes and validates the credential rotation payload.
func DecodeSenhaUpdate(c *gin.Context) (*SenhaUpdateRequest, *apierrors.APIError) {
	var req SenhaUpdateRequest
	if apiErr := decodeInto(c, &req); apiErr != nil {
		return nil, apiErr
	}
	if details := validation.Struct(req); details != nil {
		return nil, apierrors.NewValidation(details)
	}
	return &req, nil
}

// UsuarioDTO é a representação completa de um usuário, visível ao
// próprio usuário e a administradores.
type UsuarioDTO struct {
	ID             uint64      `json:"id"`
	Nome           string      `json:"nome"`
	Sobrenome      string      `json:"sobrenome"`
	Email          string      `json:"email"`
	Telefone       string      `json:"telefone,omitempty"`
	DataNascimento *time.Time  `json:"dataNascimento,omitempty"`
	Role           models.Role `json:"role"`
	Foto           string      `json:"foto,omitempty"`
	Verificado     bool        `json:"verificado"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// UsuarioPublicoDTO é a representação reduzida, sem PII além do email
// de contato, usada em listagens e leituras de terceiros.
type UsuarioPublicoDTO struct {
	ID        uint64 `json:"id"`
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
}

// ToUsuarioDTO converts a Usuario model to its full DTO.
func ToUsuarioDTO(u models.Usuario) UsuarioDTO {
	return UsuarioDTO{
		ID:             u.ID,
		Nome:           u.Nome,
		Sobrenome:      u.Sobrenome,
		Email:          u.Email,
		Telefone:       u.Telefone,
		DataNascimento: u.DataNascimento,
		Role:           u.Role,
		Foto:           u.Foto,
		Verificado:     u.Verificado,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// ToUsuarioPublicoDTO converts a Usuario model to its public DTO.
func ToUsuarioPublicoDTO(u models.Usuario) UsuarioPublicoDTO {
	return UsuarioPublicoDTO{
		ID:        u.ID,
		Nome:      u.Nome,
		Sobrenome: u.Sobrenome,
		Email:     u.Email,
	}
}

// UsuarioListResponse is the paginated user listing.
type UsuarioListResponse struct {
	Usuarios   []UsuarioPublicoDTO `json:"usuarios"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalCount int64               `json:"totalCount"`
}

// ToUsuarioListResponse converts users to the listing response.
func ToUsuarioListResponse(usuarios []models.Usuario, page, limit int, total int64) UsuarioListResponse {
	items := make([]UsuarioPublicoDTO, len(usuarios))
	for i, u := range usuarios {
		items[i] = ToUsuarioPublicoDTO(u)
	}
	return UsuarioListResponse{
		Usuarios:   items,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
	}
}
