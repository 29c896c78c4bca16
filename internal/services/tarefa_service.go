package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/dto"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/policy"
	"github.com/falaoperador/admin-api/internal/repository"
)

// TarefaService handles task business logic.
type TarefaService struct {
	tarefaRepo repository.TarefaRepository
}

// NewTarefaService creates a new TarefaService.
func NewTarefaService(tarefaRepo repository.TarefaRepository) *TarefaService {
	return &TarefaService{tarefaRepo: tarefaRepo}
}

// List retrieves the caller-visible tasks.
func (s *TarefaService) List(caller policy.Caller, filter repository.TarefaFilter) ([]models.Tarefa, int64, error) {
	filter.CallerID = caller.ID
	filter.Admin = caller.IsAdmin()
	return s.tarefaRepo.List(filter)
}

// Get retrieves a task, enforcing the read policy.
func (s *TarefaService) Get(caller policy.Caller, id uint64) (*models.Tarefa, error) {
	tarefa, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if err := policy.Check(policy.EntityTarefa, policy.OpRead, caller, policy.ForTarefa(*tarefa)); err != nil {
		return nil, err
	}

	return tarefa, nil
}

// Create creates a task owned by the caller.
func (s *TarefaService) Create(caller policy.Caller, req *dto.TarefaCreateRequest) (*models.Tarefa, error) {
	tarefa := &models.Tarefa{
		Titulo:     req.Titulo,
		Descricao:  req.Descricao,
		Status:     req.Status,
		Prioridade: req.Prioridade,
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
		UsuarioID:  caller.ID,
	}
	if req.Publica != nil {
		tarefa.Publica = *req.Publica
	}

	if err := s.tarefaRepo.Create(tarefa); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.find(tarefa.ID)
}

// Update applies a partial update, enforcing the write policy.
func (s *TarefaService) Update(caller policy.Caller, id uint64, req *dto.TarefaUpdateRequest) (*models.Tarefa, error) {
	tarefa, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if err := policy.Check(policy.EntityTarefa, policy.OpWrite, caller, policy.ForTarefa(*tarefa)); err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		tarefa.Titulo = *req.Titulo
	}
	if req.Descricao != nil {
		tarefa.Descricao = *req.Descricao
	}
	if req.Status != nil {
		tarefa.Status = *req.Status
	}
	if req.Prioridade != nil {
		tarefa.Prioridade = *req.Prioridade
	}
	if req.Publica != nil {
		tarefa.Publica = *req.Publica
	}
	if req.DataInicio != nil {
		tarefa.DataInicio = req.DataInicio
	}
	if req.DataFim != nil {
		tarefa.DataFim = req.DataFim
	}

	tarefa.Usuario = models.Usuario{}

	if err := s.tarefaRepo.Update(tarefa); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.find(id)
}

// Delete removes a task, enforcing the write policy.
func (s *TarefaService) Delete(caller policy.Caller, id uint64) error {
	tarefa, err := s.find(id)
	if err != nil {
		return err
	}

	if err := policy.Check(policy.EntityTarefa, policy.OpWrite, caller, policy.ForTarefa(*tarefa)); err != nil {
		return err
	}

	if err := s.tarefaRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TarefaService) find(id uint64) (*models.Tarefa, error) {
	tarefa, err := s.tarefaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return tarefa, nil
}
