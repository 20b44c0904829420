package services

import (
	"context"
	"errors"
	"time"

	"github.com/prefeitura-rio/app-cnh/internal/logging"
	"github.com/prefeitura-rio/app-cnh/internal/models"
	"github.com/prefeitura-rio/app-cnh/internal/observability"
	"github.com/prefeitura-rio/app-cnh/internal/store"
	"github.com/prefeitura-rio/app-cnh/internal/utils"
	"go.uber.org/zap"
)

// CNHService normalizes CNH payloads and persists them through a store
type CNHService struct {
	store  store.Store
	logger *logging.SafeLogger
}

// NewCNHService creates a new CNH service
func NewCNHService(s store.Store, logger *logging.SafeLogger) *CNHService {
	if logger == nil {
		logger = logging.Logger
	}
	return &CNHService{
		store:  s,
		logger: logger.Named("cnh_service").With(zap.String("backend", s.Backend())),
	}
}

// Backend names the storage backend in use
func (s *CNHService) Backend() string {
	return s.store.Backend()
}

// Create normalizes a payload and stores the resulting record
func (s *CNHService) Create(ctx context.Context, payload map[string]interface{}) (*models.CNH, error) {
	_, normSpan := utils.TraceNormalization(ctx, "create")
	cnh, err := NormalizeCNH(payload)
	if err != nil {
		utils.RecordErrorInSpan(normSpan, err, nil)
		normSpan.End()
		s.recordOutcome("create", err)
		return nil, err
	}
	normSpan.End()

	err = s.observe(ctx, "create", cnh.Registro, func(ctx context.Context) error {
		return s.store.Create(ctx, cnh)
	})
	s.recordOutcome("create", err)
	if err != nil {
		if !errors.Is(err, models.ErrCNHAlreadyExists) {
			s.logger.Error("failed to create CNH",
				zap.String("registro", cnh.Registro),
				zap.String("cpf", observability.MaskCPF(cnh.CPF)),
				zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("CNH created",
		zap.String("registro", cnh.Registro),
		zap.String("nome", utils.MaskName(cnh.Nome)),
		zap.String("cpf", observability.MaskCPF(cnh.CPF)))
	return cnh, nil
}

// List returns every stored record
func (s *CNHService) List(ctx context.Context) ([]models.CNH, error) {
	var cnhs []models.CNH
	err := s.observe(ctx, "list", "", func(ctx context.Context) error {
		var err error
		cnhs, err = s.store.List(ctx)
		return err
	})
	s.recordOutcome("list", err)
	if err != nil {
		s.logger.Error("failed to list CNHs", zap.Error(err))
		return nil, err
	}
	if cnhs == nil {
		cnhs = []models.CNH{}
	}
	return cnhs, nil
}

// Get returns the record with the given registro
func (s *CNHService) Get(ctx context.Context, registro string) (*models.CNH, error) {
	var cnh *models.CNH
	err := s.observe(ctx, "get", registro, func(ctx context.Context) error {
		var err error
		cnh, err = s.store.Get(ctx, registro)
		return err
	})
	s.recordOutcome("get", err)
	if err != nil {
		s.logUnexpected("failed to get CNH", registro, err)
		return nil, err
	}
	return cnh, nil
}

// Update applies a partial payload to an existing record and returns the stored row
func (s *CNHService) Update(ctx context.Context, registro string, payload map[string]interface{}) (*models.CNH, error) {
	_, normSpan := utils.TraceNormalization(ctx, "update")
	fields, err := NormalizeUpdate(payload)
	if err != nil {
		utils.RecordErrorInSpan(normSpan, err, nil)
		normSpan.End()
		s.recordOutcome("update", err)
		return nil, err
	}
	utils.AddSpanAttribute(normSpan, "update.fields", len(fields))
	normSpan.End()

	var cnh *models.CNH
	err = s.observe(ctx, "update", registro, func(ctx context.Context) error {
		var err error
		cnh, err = s.store.Update(ctx, registro, fields)
		return err
	})
	s.recordOutcome("update", err)
	if err != nil {
		s.logUnexpected("failed to update CNH", registro, err)
		return nil, err
	}

	s.logger.Info("CNH updated",
		zap.String("registro", registro),
		zap.Int("fields", len(fields)))
	return cnh, nil
}

// Delete removes a record and returns its last state
func (s *CNHService) Delete(ctx context.Context, registro string) (*models.CNH, error) {
	var cnh *models.CNH
	err := s.observe(ctx, "delete", registro, func(ctx context.Context) error {
		var err error
		cnh, err = s.store.Delete(ctx, registro)
		return err
	})
	s.recordOutcome("delete", err)
	if err != nil {
		s.logUnexpected("failed to delete CNH", registro, err)
		return nil, err
	}

	s.logger.Info("CNH deleted", zap.String("registro", registro))
	return cnh, nil
}

// Ping checks the storage backend
func (s *CNHService) Ping(ctx context.Context) error {
	return s.observe(ctx, "ping", "", s.store.Ping)
}

// observe runs a store call inside a span and records its latency
func (s *CNHService) observe(ctx context.Context, operation, registro string, fn func(context.Context) error) error {
	backend := s.store.Backend()
	start := time.Now()

	ctx, span, cleanup := utils.TraceStoreOperation(ctx, backend, operation, registro)
	defer cleanup()

	err := fn(ctx)
	observability.StoreOperationDuration.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"error.status": operationStatus(err),
		})
	}
	return err
}

func (s *CNHService) recordOutcome(operation string, err error) {
	observability.CNHOperations.WithLabelValues(operation, operationStatus(err)).Inc()
}

// logUnexpected logs errors that are not part of the normal not-found flow
func (s *CNHService) logUnexpected(msg, registro string, err error) {
	if errors.Is(err, models.ErrCNHNotFound) || errors.Is(err, models.ErrValidation) {
		return
	}
	s.logger.Error(msg, zap.String("registro", registro), zap.Error(err))
}

// operationStatus classifies an operation result for metrics
func operationStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, models.ErrValidation):
		return "invalid"
	case errors.Is(err, models.ErrCNHNotFound):
		return "not_found"
	case errors.Is(err, models.ErrCNHAlreadyExists):
		return "conflict"
	default:
		return "error"
	}
}
