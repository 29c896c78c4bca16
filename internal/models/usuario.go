package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleUsuario Role = "USUARIO"
)

type Usuario struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	Nome           string         `gorm:"type:varchar(100);not null" json:"nome"`
	Sobrenome      string         `gorm:"type:varchar(100);not null" json:"sobrenome"`
	Email          string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	SenhaHash      string         `gorm:"type:varchar(255);not null" json:"-"`
	Telefone       string         `gorm:"type:varchar(20)" json:"telefone"`
	DataNascimento *time.Time     `json:"dataNascimento"`
	Role           Role           `gorm:"type:varchar(20);not null;default:'USUARIO'" json:"role"`
	Foto           string         `gorm:"type:varchar(255)" json:"foto"`
	Verificado     bool           `gorm:"not null;default:false" json:"verificado"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Contas         []Conta              `gorm:"foreignKey:UsuarioID" json:"-"`
	Tarefas        []Tarefa             `gorm:"foreignKey:UsuarioID" json:"-"`
	EventosCriados []Evento             `gorm:"foreignKey:CriadorID" json:"-"`
	Participacoes  []EventoParticipante `gorm:"foreignKey:UsuarioID" json:"-"`
}

// TableName sets the table name for GORM.
func (Usuario) TableName() string {
	return "usuarios"
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u Usuario) IsAdmin() bool {
	return u.Role == RoleAdmin
}
