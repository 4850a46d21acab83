package handler

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fadilmartias/profile-analyzer/internal/dto"
	"github.com/fadilmartias/profile-analyzer/internal/scoring"
	"github.com/fadilmartias/profile-analyzer/internal/usecase"
	"github.com/fadilmartias/profile-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

const uploadField = "file"

type AnalyzeHandler struct {
	uc             *usecase.AnalysisUsecase
	engine         scoring.Engine
	bank           scoring.KeywordBank
	maxUploadBytes int64
}

func NewAnalyzeHandler(uc *usecase.AnalysisUsecase, engine scoring.Engine, bank scoring.KeywordBank, maxUploadBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc, engine: engine, bank: bank, maxUploadBytes: maxUploadBytes}
}

func (h *AnalyzeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.Health)
	router.Get("/keywords", h.Keywords)
	router.Post("/analyze", h.Analyze)
	router.Post("/analyze_pdf", h.AnalyzeDocument)
}

func (h *AnalyzeHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": h.engine.Version(),
		"engine":  h.engine.Name(),
	})
}

func (h *AnalyzeHandler) Keywords(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get keyword bank",
		Data:    h.bank.Keywords(),
		Meta:    fiber.Map{"total": h.bank.Len()},
	})
}

// Analyze scores the pasted profile sections in the JSON body.
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	resp, err := h.uc.AnalyzeText(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRequest) {
			var details any
			if formErr := util.FormErrorFromValidation("invalid profile sections", err); formErr != nil {
				details = formErr.Errors
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: "invalid profile sections",
				Details: details,
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to analyze profile",
		}, err)
	}
	return c.JSON(resp)
}

// AnalyzeDocument scores an uploaded profile document (multipart field "file").
func (h *AnalyzeHandler) AnalyzeDocument(c *fiber.Ctx) error {
	file, err := c.FormFile(uploadField)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("%s file is required", uploadField),
		}, err)
	}

	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusRequestEntityTooLarge,
			Message: fmt.Sprintf("%s file size is too large (max %d bytes)", uploadField, h.maxUploadBytes),
		})
	}

	if !usecase.SupportedDocument(file.Filename) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnsupportedMediaType,
			Message: fmt.Sprintf("unsupported %s file type", uploadField),
		})
	}

	f, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot read %s file", uploadField),
		}, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot read %s file", uploadField),
		}, err)
	}

	resp, err := h.uc.AnalyzeDocument(c.UserContext(), file.Filename, data)
	if err != nil {
		code := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, usecase.ErrUnsupportedDocument):
			code = fiber.StatusUnsupportedMediaType
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			code = fiber.StatusServiceUnavailable
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: "failed to analyze document",
		}, err)
	}
	return c.JSON(resp)
}
