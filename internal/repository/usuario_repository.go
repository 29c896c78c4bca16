package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/falaoperador/admin-api/internal/database"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/utils"
)

var (
	// ErrCreateUsuario is returned when creating the user fails inside the signup transaction.
	ErrCreateUsuario = errors.New("usuario repository: create usuario failed")
	// ErrCreateConta is returned when creating the credential record fails inside the signup transaction.
	ErrCreateConta = errors.New("usuario repository: create conta failed")
)

// GormUsuarioRepository is a GORM implementation of UsuarioRepository.
type GormUsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository creates a new UsuarioRepository.
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &GormUsuarioRepository{db: db}
}

// CreateWithConta creates the user and its credential record atomically.
func (r *GormUsuarioRepository) CreateWithConta(usuario *models.Usuario, conta *models.Conta) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(usuario).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUsuario, err)
		}

		conta.UsuarioID = usuario.ID

		if err := tx.Create(conta).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateConta, err)
		}

		return nil
	})
}

// FindByID finds a user by ID.
func (r *GormUsuarioRepository) FindByID(id uint64) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.First(&usuario, id).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

// FindByEmail finds a user by email.
func (r *GormUsuarioRepository) FindByEmail(email string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.Where("email = ?", email).First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

// List retrieves users with pagination.
func (r *GormUsuarioRepository) List(params utils.PaginationParams) ([]models.Usuario, int64, error) {
	var usuarios []models.Usuario

	query := r.db.Model(&models.Usuario{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("usuarios.created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&usuarios).Error; err != nil {
		return nil, 0, err
	}

	return usuarios, total, nil
}

// Update persists changes to a user.
func (r *GormUsuarioRepository) Update(usuario *models.Usuario) error {
	return r.db.Save(usuario).Error
}

// UpdateSenha replaces the hash on the user and on its credential records atomically.
func (r *GormUsuarioRepository) UpdateSenha(usuarioID uint64, senhaHash string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Usuario{}).
			Where("id = ?", usuarioID).
			Update("senha_hash", senhaHash).Error; err != nil {
			return err
		}

		return tx.Model(&models.Conta{}).
			Where("usuario_id = ?", usuarioID).
			Update("senha_hash", senhaHash).Error
	})
}

// Delete soft deletes a user and removes its credential records.
func (r *GormUsuarioRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ?", id).Delete(&models.Conta{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Usuario{}, id).Error
	})
}

// CountByIDs counts how many of the given user IDs exist.
func (r *GormUsuarioRepository) CountByIDs(ids []uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Usuario{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
