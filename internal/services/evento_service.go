package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/dto"
	"github.com/falaoperador/admin-api/internal/geocoding"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/policy"
	"github.com/falaoperador/admin-api/internal/repository"
	"github.com/falaoperador/admin-api/internal/storage"
)

// EventoService handles event business logic.
type EventoService struct {
	eventoRepo  repository.EventoRepository
	usuarioRepo repository.UsuarioRepository
	storage     storage.Storage
	geocoder    geocoding.Geocoder
	logger      *zap.Logger
}

// NewEventoService creates a new EventoService. geocoder pode ser nil
// quando o serviço externo não está configurado.
func NewEventoService(
	eventoRepo repository.EventoRepository,
	usuarioRepo repository.UsuarioRepository,
	st storage.Storage,
	geocoder geocoding.Geocoder,
	logger *zap.Logger,
) *EventoService {
	return &EventoService{
		eventoRepo:  eventoRepo,
		usuarioRepo: usuarioRepo,
		storage:     st,
		geocoder:    geocoder,
		logger:      logger,
	}
}

// List retrieves the caller-visible events. Filtros de visibilidade e
// categoria são aplicados apenas para administradores.
func (s *EventoService) List(caller policy.Caller, filter repository.EventoFilter) ([]models.Evento, int64, error) {
	filter.CallerID = caller.ID
	filter.Admin = caller.IsAdmin()
	if !filter.Admin {
		filter.Visibilidade = nil
		filter.Categoria = nil
	}
	return s.eventoRepo.List(filter)
}

// Get retrieves an event, enforcing the read policy.
func (s *EventoService) Get(caller policy.Caller, id uint64) (*models.Evento, error) {
	evento, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if err := policy.Check(policy.EntityEvento, policy.OpRead, caller, policy.ForEvento(*evento, caller.ID)); err != nil {
		return nil, err
	}

	return evento, nil
}

// Create creates an event owned by the caller. Geocodificação é uma
// única tentativa e degrada silenciosamente para "sem coordenadas".
func (s *EventoService) Create(ctx context.Context, caller policy.Caller, req *dto.EventoCreateRequest, imagem *multipart.FileHeader) (*models.Evento, error) {
	if err := s.verificaParticipantes(req.Participantes); err != nil {
		return nil, err
	}

	evento := &models.Evento{
		Titulo:       req.Titulo,
		Descricao:    req.Descricao,
		Rua:          req.Rua,
		Numero:       req.Numero,
		Cep:          req.Cep,
		DataInicio:   req.DataInicio,
		DataFim:      req.DataFim,
		CriadorID:    caller.ID,
		Visibilidade: req.Visibilidade,
		Categoria:    req.Categoria,
		LinkVideo:    req.LinkVideo,
	}

	s.geocode(ctx, evento)

	if imagem != nil {
		path, err := s.saveImagem(imagem)
		if err != nil {
			return nil, err
		}
		evento.Imagem = path
	}

	for _, usuarioID := range req.Participantes {
		evento.Participantes = append(evento.Participantes, models.EventoParticipante{
			UsuarioID: usuarioID,
		})
	}

	if err := s.eventoRepo.Create(evento); err != nil {
		s.deleteImagem(evento.Imagem)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return s.find(evento.ID)
}

// Update applies a partial update. O conjunto de participantes, quando
// enviado, é substituído por inteiro na mesma transação do evento.
func (s *EventoService) Update(ctx context.Context, caller policy.Caller, id uint64, req *dto.EventoUpdateRequest, imagem *multipart.FileHeader) (*models.Evento, error) {
	evento, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if err := policy.Check(policy.EntityEvento, policy.OpWrite, caller, policy.ForEvento(*evento, caller.ID)); err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		evento.Titulo = *req.Titulo
	}
	if req.Descricao != nil {
		evento.Descricao = *req.Descricao
	}
	if req.DataInicio != nil {
		evento.DataInicio = *req.DataInicio
	}
	if req.DataFim != nil {
		evento.DataFim = *req.DataFim
	}
	if req.Visibilidade != nil {
		evento.Visibilidade = *req.Visibilidade
	}
	if req.Categoria != nil {
		evento.Categoria = *req.Categoria
	}
	if req.LinkVideo != nil {
		evento.LinkVideo = *req.LinkVideo
	}

	enderecoAlterado := false
	if req.Rua != nil {
		evento.Rua = *req.Rua
		enderecoAlterado = true
	}
	if req.Numero != nil {
		evento.Numero = *req.Numero
		enderecoAlterado = true
	}
	if req.Cep != nil {
		evento.Cep = *req.Cep
		enderecoAlterado = true
	}
	if enderecoAlterado {
		evento.Latitude = nil
		evento.Longitude = nil
		s.geocode(ctx, evento)
	}

	imagemAntiga := evento.Imagem
	if imagem != nil {
		path, err := s.saveImagem(imagem)
		if err != nil {
			return nil, err
		}
		evento.Imagem = path
	}

	// Participantes preloaded; o Save não deve recriar associações.
	evento.Participantes = nil
	evento.Criador = models.Usuario{}

	if req.Participantes != nil {
		if err := s.verificaParticipantes(*req.Participantes); err != nil {
			return nil, err
		}
		err = s.eventoRepo.UpdateWithParticipantes(evento, *req.Participantes)
	} else {
		err = s.eventoRepo.Update(evento)
	}
	if err != nil {
		if imagem != nil {
			s.deleteImagem(evento.Imagem)
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	if imagem != nil && imagemAntiga != "" && imagemAntiga != evento.Imagem {
		s.deleteImagem(imagemAntiga)
	}

	return s.find(id)
}

// Delete removes an event; participantes saem na mesma transação e a
// imagem é removida best-effort.
func (s *EventoService) Delete(caller policy.Caller, id uint64) error {
	evento, err := s.find(id)
	if err != nil {
		return err
	}

	if err := policy.Check(policy.EntityEvento, policy.OpWrite, caller, policy.ForEvento(*evento, caller.ID)); err != nil {
		return err
	}

	if err := s.eventoRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.deleteImagem(evento.Imagem)
	return nil
}

func (s *EventoService) find(id uint64) (*models.Evento, error) {
	evento, err := s.eventoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return evento, nil
}

func (s *EventoService) verificaParticipantes(usuarioIDs []uint64) error {
	if len(usuarioIDs) == 0 {
		return nil
	}
	count, err := s.usuarioRepo.CountByIDs(usuarioIDs)
	if err != nil {
		return fmt.Errorf("failed to check participants: %w", err)
	}
	if count != int64(len(usuarioIDs)) {
		return apierrors.NewValidation(map[string][]string{
			"participantes": {"Um ou mais usuários não existem"},
		})
	}
	return nil
}

// geocode resolve o endereço em coordenadas em uma única tentativa.
// Sem geocoder configurado ou em qualquer falha, o evento segue sem
// coordenadas.
func (s *EventoService) geocode(ctx context.Context, evento *models.Evento) {
	if s.geocoder == nil {
		return
	}

	coords, err := s.geocoder.Resolve(ctx, evento.Rua, evento.Numero, evento.Cep)
	if err != nil {
		s.logger.Warn("falha na geocodificação do endereço",
			zap.String("cep", evento.Cep),
			zap.Error(err),
		)
		return
	}
	if coords == nil {
		return
	}

	evento.Latitude = &coords.Latitude
	evento.Longitude = &coords.Longitude
}

func (s *EventoService) saveImagem(file *multipart.FileHeader) (string, error) {
	path, err := s.storage.Save(file, "eventos")
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

func (s *EventoService) deleteImagem(path string) {
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
