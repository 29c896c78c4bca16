package models

import "time"

// EventoParticipante liga um Usuario a um Evento do qual participa.
// O conjunto é substituído por inteiro na atualização do evento e
// removido em cascata na exclusão.
type EventoParticipante struct {
	EventoID  uint64    `gorm:"primarykey" json:"eventoId"`
	UsuarioID uint64    `gorm:"primarykey" json:"usuarioId"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Evento  Evento  `gorm:"foreignKey:EventoID" json:"-"`
	Usuario Usuario `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
}

// TableName sets the table name for GORM.
func (EventoParticipante) TableName() string {
	return "evento_participantes"
}
