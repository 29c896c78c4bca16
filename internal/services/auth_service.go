package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/constants"
	"github.com/falaoperador/admin-api/internal/dto"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/repository"
)

// AuthService handles registration and credential verification.
type AuthService struct {
	usuarioRepo repository.UsuarioRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(usuarioRepo repository.UsuarioRepository) *AuthService {
	return &AuthService{usuarioRepo: usuarioRepo}
}

// Registro cria o usuário e seu registro de credencial na mesma
// transação. Email duplicado responde 400, não 409, por
// compatibilidade com os clientes existentes.
func (s *AuthService) Registro(input *dto.RegistroRequest) (*models.Usuario, error) {
	if _, err := s.usuarioRepo.FindByEmail(input.Email); err == nil {
		return nil, apierrors.NewBadRequest("Email já cadastrado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	senhaHash, err := HashSenha(input.Senha)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usuario := &models.Usuario{
		Nome:           input.Nome,
		Sobrenome:      input.Sobrenome,
		Email:          input.Email,
		SenhaHash:      senhaHash,
		Telefone:       input.Telefone,
		DataNascimento: input.DataNascimento,
		Role:           models.RoleUsuario,
	}

	conta := &models.Conta{
		Provider:  constants.CredentialsProvider,
		SenhaHash: senhaHash,
	}

	if err := s.usuarioRepo.CreateWithConta(usuario, conta); err != nil {
		return nil, fmt.Errorf("failed to complete registration: %w", err)
	}

	return usuario, nil
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input *dto.LoginRequest) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewUnauthorized("Email ou senha inválidos")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !VerificaSenha(input.Senha, usuario.SenhaHash) {
		return nil, apierrors.NewUnauthorized("Email ou senha inválidos")
	}

	return usuario, nil
}

// GetUsuario retrieves a user by ID.
func (s *AuthService) GetUsuario(id uint64) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return usuario, nil
}

// HashSenha gera o hash bcrypt usado tanto pelo registro quanto pela
// rotação de credenciais.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerificaSenha compara a senha em texto com o hash armazenado.
// Qualquer divergência ou hash malformado devolve false.
func VerificaSenha(senha, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
