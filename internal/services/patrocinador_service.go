package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/dto"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/policy"
	"github.com/falaoperador/admin-api/internal/repository"
	"github.com/falaoperador/admin-api/internal/storage"
	"github.com/falaoperador/admin-api/internal/utils"
)

// PatrocinadorService handles sponsor business logic. Escrita é
// exclusiva de administradores; leitura é pública.
type PatrocinadorService struct {
	patrocinadorRepo repository.PatrocinadorRepository
	storage          storage.Storage
	logger           *zap.Logger
}

// NewPatrocinadorService creates a new PatrocinadorService.
func NewPatrocinadorService(patrocinadorRepo repository.PatrocinadorRepository, st storage.Storage, logger *zap.Logger) *PatrocinadorService {
	return &PatrocinadorService{
		patrocinadorRepo: patrocinadorRepo,
		storage:          st,
		logger:           logger,
	}
}

// List retrieves sponsors for the public listing.
func (s *PatrocinadorService) List(params utils.PaginationParams) ([]models.Patrocinador, int64, error) {
	return s.patrocinadorRepo.List(params)
}

// Get retrieves a sponsor by ID.
func (s *PatrocinadorService) Get(id uint64) (*models.Patrocinador, error) {
	patrocinador, err := s.patrocinadorRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("failed to find sponsor: %w", err)
	}
	return patrocinador, nil
}

// Create creates a sponsor. A imagem é obrigatória e precisa chegar
// antes de qualquer escrita no banco.
func (s *PatrocinadorService) Create(caller policy.Caller, req *dto.PatrocinadorCreateRequest, imagem *multipart.FileHeader) (*models.Patrocinador, error) {
	if err := policy.Check(policy.EntityPatrocinador, policy.OpWrite, caller, policy.ForPatrocinador()); err != nil {
		return nil, err
	}

	if imagem == nil {
		return nil, apierrors.NewValidation(map[string][]string{
			"imagem": {"Campo obrigatório"},
		})
	}

	path, err := s.saveImagem(imagem)
	if err != nil {
		return nil, err
	}

	patrocinador := &models.Patrocinador{
		NomeEmpresa: req.NomeEmpresa,
		Links:       req.Links,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Endereco:    req.Endereco,
		Imagem:      path,
	}

	if err := s.patrocinadorRepo.Create(patrocinador); err != nil {
		s.deleteImagem(path)
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}

	return patrocinador, nil
}

// Update applies a partial update; uma nova imagem substitui a antiga,
// removida best-effort.
func (s *PatrocinadorService) Update(caller policy.Caller, id uint64, req *dto.PatrocinadorUpdateRequest, imagem *multipart.FileHeader) (*models.Patrocinador, error) {
	if err := policy.Check(policy.EntityPatrocinador, policy.OpWrite, caller, policy.ForPatrocinador()); err != nil {
		return nil, err
	}

	patrocinador, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.NomeEmpresa != nil {
		patrocinador.NomeEmpresa = *req.NomeEmpresa
	}
	if req.Links != nil {
		patrocinador.Links = *req.Links
	}
	if req.Telefone != nil {
		patrocinador.Telefone = *req.Telefone
	}
	if req.Email != nil {
		patrocinador.Email = *req.Email
	}
	if req.Endereco != nil {
		patrocinador.Endereco = *req.Endereco
	}

	imagemAntiga := patrocinador.Imagem
	if imagem != nil {
		path, err := s.saveImagem(imagem)
		if err != nil {
			return nil, err
		}
		patrocinador.Imagem = path
	}

	if err := s.patrocinadorRepo.Update(patrocinador); err != nil {
		if imagem != nil {
			s.deleteImagem(patrocinador.Imagem)
		}
		return nil, fmt.Errorf("failed to update sponsor: %w", err)
	}

	if imagem != nil && imagemAntiga != "" && imagemAntiga != patrocinador.Imagem {
		s.deleteImagem(imagemAntiga)
	}

	return patrocinador, nil
}

// Delete removes a sponsor. Arquivo de imagem ausente ou inacessível
// não impede a remoção do registro.
func (s *PatrocinadorService) Delete(caller policy.Caller, id uint64) error {
	if err := policy.Check(policy.EntityPatrocinador, policy.OpWrite, caller, policy.ForPatrocinador()); err != nil {
		return err
	}

	patrocinador, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.patrocinadorRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete sponsor: %w", err)
	}

	s.deleteImagem(patrocinador.Imagem)
	return nil
}

func (s *PatrocinadorService) saveImagem(file *multipart.FileHeader) (string, error) {
	path, err := s.storage.Save(file, "patrocinadores")
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTipoInvalido):
			return "", apierrors.NewBadRequest("Tipo de imagem não permitido (jpeg, png ou webp)")
		case errors.Is(err, storage.ErrTamanhoExcedido):
			return "", apierrors.NewBadRequest("Imagem excede o tamanho máximo de 5 MB")
		default:
			return "", fmt.Errorf("failed to save image: %w", err)
		}
	}
	return path, nil
}

func (s *PatrocinadorService) deleteImagem(path string) {
	if path == "" {
		return
	}
	if err := s.storage.Delete(path); err != nil {
		s.logger.Warn("falha ao remover arquivo de imagem",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
