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

// UsuarioService handles user profile business logic.
type UsuarioService struct {
	usuarioRepo repository.UsuarioRepository
	storage     storage.Storage
	logger      *zap.Logger
}

// NewUsuarioService creates a new UsuarioService.
func NewUsuarioService(usuarioRepo repository.UsuarioRepository, st storage.Storage, logger *zap.Logger) *UsuarioService {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		storage:     st,
		logger:      logger,
	}
}

// List retrieves users for the public listing.
func (s *UsuarioService) List(params utils.PaginationParams) ([]models.Usuario, int64, error) {
	return s.usuarioRepo.List(params)
}

// Get retrieves a user by ID.
func (s *UsuarioService) Get(id uint64) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return usuario, nil
}

// Update applies a partial profile update. Role e Verificado só podem
// ser alterados por administradores.
func (s *UsuarioService) Update(caller policy.Caller, id uint64, req *dto.UsuarioUpdateRequest, foto *multipart.FileHeader) (*models.Usuario, error) {
	usuario, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := policy.Check(policy.EntityUsuario, policy.OpWrite, caller, policy.ForUsuario(*usuario)); err != nil {
		return nil, err
	}

	if (req.Role != nil || req.Verificado != nil) && !caller.IsAdmin() {
		return nil, apierrors.NewForbidden("Apenas administradores podem alterar papel e verificação")
	}

	if req.Nome != nil {
		usuario.Nome = *req.Nome
	}
	if req.Sobrenome != nil {
		usuario.Sobrenome = *req.Sobrenome
	}
	if req.Telefone != nil {
		usuario.Telefone = *req.Telefone
	}
	if req.DataNascimento != nil {
		usuario.DataNascimento = req.DataNascimento
	}
	if req.Role != nil {
		usuario.Role = *req.Role
	}
	if req.Verificado != nil {
		usuario.Verificado = *req.Verificado
	}

	fotoAntiga := usuario.Foto
	if foto != nil {
		path, err := s.saveImagem(foto, "usuarios")
		if err != nil {
			return nil, err
		}
		usuario.Foto = path
	}

	if err := s.usuarioRepo.Update(usuario); err != nil {
		if foto != nil {
			s.deleteImagem(usuario.Foto)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if foto != nil && fotoAntiga != "" && fotoAntiga != usuario.Foto {
		s.deleteImagem(fotoAntiga)
	}

	return usuario, nil
}

// UpdateSenha rotates the password hash on the user and its credential
// records. Administradores redefinem sem informar a senha atual.
func (s *UsuarioService) UpdateSenha(caller policy.Caller, id uint64, req *dto.SenhaUpdateRequest) error {
	usuario, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := policy.Check(policy.EntityUsuario, policy.OpWrite, caller, policy.ForUsuario(*usuario)); err != nil {
		return err
	}

	if !caller.IsAdmin() && !VerificaSenha(req.SenhaAtual, usuario.SenhaHash) {
		return apierrors.NewBadRequest("Senha atual incorreta")
	}

	senhaHash, err := HashSenha(req.NovaSenha)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.usuarioRepo.UpdateSenha(id, senhaHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// Delete removes a user; a foto associada é removida best-effort.
func (s *UsuarioService) Delete(caller policy.Caller, id uint64) error {
	usuario, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := policy.Check(policy.EntityUsuario, policy.OpWrite, caller, policy.ForUsuario(*usuario)); err != nil {
		return err
	}

	if err := s.usuarioRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.deleteImagem(usuario.Foto)
	return nil
}

func (s *UsuarioService) saveImagem(file *multipart.FileHeader, categoria string) (string, error) {
	path, err := s.storage.Save(file, categoria)
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

func (s *UsuarioService) deleteImagem(path string) {
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
