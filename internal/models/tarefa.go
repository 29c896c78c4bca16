package models

import (
	"time"

	"gorm.io/gorm"
)

type StatusTarefa string

const (
	StatusPendente    StatusTarefa = "PENDENTE"
	StatusEmProgresso StatusTarefa = "EM_PROGRESSO"
	StatusConcluida   StatusTarefa = "CONCLUIDA"
	StatusCancelada   StatusTarefa = "CANCELADA"
)

type PrioridadeTarefa string

const (
	PrioridadeBaixa   PrioridadeTarefa = "BAIXA"
	PrioridadeMedia   PrioridadeTarefa = "MEDIA"
	PrioridadeAlta    PrioridadeTarefa = "ALTA"
	PrioridadeUrgente PrioridadeTarefa = "URGENTE"
)

// Valida reports whether the value is a known status.
func (s StatusTarefa) Valida() bool {
	switch s {
	case StatusPendente, StatusEmProgresso, StatusConcluida, StatusCancelada:
		return true
	}
	return false
}

// Valida reports whether the value is a known priority.
func (p PrioridadeTarefa) Valida() bool {
	switch p {
	case PrioridadeBaixa, PrioridadeMedia, PrioridadeAlta, PrioridadeUrgente:
		return true
	}
	return false
}

type Tarefa struct {
	ID         uint64           `gorm:"primarykey" json:"id"`
	Titulo     string           `gorm:"type:varchar(100);not null" json:"titulo"`
	Descricao  string           `gorm:"type:text" json:"descricao"`
	Status     StatusTarefa     `gorm:"type:varchar(20);not null;default:'PENDENTE'" json:"status"`
	Prioridade PrioridadeTarefa `gorm:"type:varchar(20);not null;default:'MEDIA'" json:"prioridade"`
	Publica    bool             `gorm:"not null;default:false" json:"publica"`
	DataInicio *time.Time       `json:"dataInicio"`
	DataFim    *time.Time       `json:"dataFim"`
	UsuarioID  uint64           `gorm:"not null;index" json:"usuarioId"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relations
	Usuario Usuario `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
}

// TableName sets the table name for GORM.
func (Tarefa) TableName() string {
	return "tarefas"
}
