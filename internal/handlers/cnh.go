package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-cnh/internal/logging"
	"github.com/prefeitura-rio/app-cnh/internal/models"
	"github.com/prefeitura-rio/app-cnh/internal/services"
	"github.com/prefeitura-rio/app-cnh/internal/utils"
	"go.uber.org/zap"
)

const (
	msgCNHCreated    = "CNH adicionada com sucesso!"
	msgCNHUpdated    = "CNH atualizada com sucesso!"
	msgCNHDeleted    = "CNH removida com sucesso!"
	msgJSONRequired  = "O corpo da requisição deve estar em formato JSON."
	msgInvalidBody   = "Dados inválidos: "
	msgInternalError = "Erro interno do servidor"
)

// CNHHandlers exposes CNH records over HTTP
type CNHHandlers struct {
	logger     *logging.SafeLogger
	cnhService *services.CNHService
}

// NewCNHHandlers creates a new CNH handlers instance
func NewCNHHandlers(logger *logging.SafeLogger, cnhService *services.CNHService) *CNHHandlers {
	return &CNHHandlers{
		logger:     logger.Named("cnh_handlers"),
		cnhService: cnhService,
	}
}

// CreateCNH godoc
// @Summary Adicionar CNH
// @Description Normaliza e cadastra uma nova CNH. Os campos nome, cpf, registro e categoria são obrigatórios.
// @Description Datas devem ser enviadas no formato DD-MM-AAAA e são armazenadas como DD/MM/AAAA.
// @Tags CNH
// @Accept json
// @Produce json
// @Param cnh body models.CNH true "Dados da CNH"
// @Success 201 {object} models.CNHResponse "CNH adicionada"
// @Failure 400 {object} ErrorResponse "Campo obrigatório ausente ou formato inválido"
// @Failure 409 {object} ErrorResponse "Registro já cadastrado"
// @Failure 415 {object} ErrorResponse "Corpo da requisição não é JSON"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /cnhs [post]
func (h *CNHHandlers) CreateCNH(c *gin.Context) {
	startTime := time.Now()

	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	cnh, err := h.cnhService.Create(c.Request.Context(), payload)
	if err != nil {
		h.writeError(c, "create", err)
		return
	}

	_, responseSpan := utils.TraceResponseSerialization(c.Request.Context(), "created")
	c.JSON(http.StatusCreated, models.CNHResponse{Mensagem: msgCNHCreated, CNH: *cnh})
	responseSpan.End()

	h.logger.Debug("CreateCNH completed",
		zap.String("registro", cnh.Registro),
		zap.Duration("total_duration", time.Since(startTime)))
}

// ListCNHs godoc
// @Summary Listar CNHs
// @Description Lista todas as CNHs cadastradas
// @Tags CNH
// @Produce json
// @Success 200 {array} models.CNH "CNHs cadastradas"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /cnhs [get]
func (h *CNHHandlers) ListCNHs(c *gin.Context) {
	cnhs, err := h.cnhService.List(c.Request.Context())
	if err != nil {
		h.writeError(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, cnhs)
}

// GetCNH godoc
// @Summary Obter CNH
// @Description Obtém uma CNH pelo número de registro
// @Tags CNH
// @Produce json
// @Param registro path string true "Número de registro da CNH"
// @Success 200 {object} models.CNH "CNH encontrada"
// @Failure 404 {object} ErrorResponse "CNH não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /cnhs/{registro} [get]
func (h *CNHHandlers) GetCNH(c *gin.Context) {
	cnh, err := h.cnhService.Get(c.Request.Context(), c.Param("registro"))
	if err != nil {
		h.writeError(c, "get", err)
		return
	}

	c.JSON(http.StatusOK, cnh)
}

// UpdateCNH godoc
// @Summary Atualizar CNH
// @Description Atualiza apenas os campos enviados de uma CNH existente. O registro não pode ser alterado.
// @Description Os campos nome, cpf, categoria e validade são normalizados; os demais são gravados como enviados.
// @Tags CNH
// @Accept json
// @Produce json
// @Param registro path string true "Número de registro da CNH"
// @Param cnh body object true "Campos a atualizar"
// @Success 200 {object} models.CNHResponse "CNH atualizada"
// @Failure 400 {object} ErrorResponse "Campo inválido ou formato incorreto"
// @Failure 404 {object} ErrorResponse "CNH não encontrada"
// @Failure 415 {object} ErrorResponse "Corpo da requisição não é JSON"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /cnhs/{registro} [put]
func (h *CNHHandlers) UpdateCNH(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	cnh, err := h.cnhService.Update(c.Request.Context(), c.Param("registro"), payload)
	if err != nil {
		h.writeError(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, models.CNHResponse{Mensagem: msgCNHUpdated, CNH: *cnh})
}

// DeleteCNH godoc
// @Summary Remover CNH
// @Description Remove uma CNH pelo número de registro. Esta ação é irreversível.
// @Tags CNH
// @Produce json
// @Param registro path string true "Número de registro da CNH"
// @Success 200 {object} models.CNHResponse "CNH removida"
// @Failure 404 {object} ErrorResponse "CNH não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /cnhs/{registro} [delete]
func (h *CNHHandlers) DeleteCNH(c *gin.Context) {
	cnh, err := h.cnhService.Delete(c.Request.Context(), c.Param("registro"))
	if err != nil {
		h.writeError(c, "delete", err)
		return
	}

	c.JSON(http.StatusOK, models.CNHResponse{Mensagem: msgCNHDeleted, CNH: *cnh})
}

// bindPayload decodes a JSON object body, writing the error response itself on failure
func (h *CNHHandlers) bindPayload(c *gin.Context) (map[string]interface{}, bool) {
	_, span := utils.TraceInputParsing(c.Request.Context(), "cnh_payload")
	defer span.End()

	if c.ContentType() != gin.MIMEJSON {
		utils.AddSpanAttribute(span, "input.content_type", c.ContentType())
		c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{Error: msgJSONRequired})
		return nil, false
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody + err.Error()})
		return nil, false
	}
	if payload == nil {
		payload = map[string]interface{}{}
	}
	return payload, true
}

// writeError maps service errors onto HTTP responses
func (h *CNHHandlers) writeError(c *gin.Context, operation string, err error) {
	var vErr *models.ValidationError
	var fErr *models.FormatError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Error()})
	case errors.As(err, &fErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fErr.Error()})
	case errors.Is(err, models.ErrCNHAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: models.ErrCNHAlreadyExists.Error()})
	case errors.Is(err, models.ErrCNHNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: models.ErrCNHNotFound.Error()})
	default:
		h.logger.Error("CNH operation failed",
			zap.String("operation", operation),
			zap.String("registro", c.Param("registro")),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}
