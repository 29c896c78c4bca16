package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/falaoperador/admin-api/internal/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUsuarioRepository_CreateWithContaTransacional(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUsuarioRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `usuarios`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `contas`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	usuario := &models.Usuario{
		Nome:      "Maria",
		Sobrenome: "Silva",
		Email:     "maria@falaoperador.com.br",
		SenhaHash: "hash",
		Role:      models.RoleUsuario,
	}
	conta := &models.Conta{Provider: "credentials", SenhaHash: "hash"}

	err := repo.CreateWithConta(usuario, conta)
	require.NoError(t, err)
	require.EqualValues(t, 7, usuario.ID)
	require.EqualValues(t, 7, conta.UsuarioID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepository_CreateWithContaDesfazNaFalhaDaConta(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUsuarioRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `usuarios`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `contas`").
		WillReturnError(gorm.ErrInvalidData)
	mock.ExpectRollback()

	err := repo.CreateWithConta(&models.Usuario{Email: "x@y.com"}, &models.Conta{})
	require.ErrorIs(t, err, ErrCreateConta)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepository_UpdateSenhaAtingeUsuarioEContas(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUsuarioRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `usuarios` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `contas` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateSenha(7, "novo-hash")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepository_DeleteRemoveContasESoftDeleteUsuario(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUsuarioRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `contas`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Usuário tem soft delete; o registro vira UPDATE de deleted_at
	mock.ExpectExec("UPDATE `usuarios` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(7)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
