package handler

import (
	"context"
	"errors"
	"strconv"

	"court_manager/constants"
	"court_manager/model"
	"court_manager/repository"
	"court_manager/utils"

	"github.com/gofiber/fiber/v2"
)

type CourtService interface {
	All(ctx context.Context) (model.Courts, error)
	Get(ctx context.Context, id uint) (*model.Court, error)
	Create(ctx context.Context, in model.CreateCourtInput) (*model.Court, error)
	Update(ctx context.Context, id uint, in model.EditCourtInput) (*model.Court, error)
	Delete(ctx context.Context, id uint) error
}

type CourtHandler struct {
	svc CourtService
}

func NewCourtHandler(svc CourtService) *CourtHandler {
	return &CourtHandler{svc: svc}
}

func (h *CourtHandler) GetCourts(c *fiber.Ctx) error {
	courts, err := h.svc.All(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(courts)
}

func (h *CourtHandler) GetCourtById(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("courtId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, err)
	}

	court, err := h.svc.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(court)
}

func (h *CourtHandler) CreateCourt(c *fiber.Ctx) error {
	input, ok := c.Locals("CreateCourt").(model.CreateCourtInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	court, err := h.svc.Create(c.Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return c.Status(fiber.StatusCreated).JSON(court)
}

func (h *CourtHandler) EditCourt(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("courtId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, err)
	}

	input, ok := c.Locals("EditCourt").(model.EditCourtInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	court, err := h.svc.Update(c.Context(), uint(id), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return c.Status(fiber.StatusOK).JSON(court)
}

func (h *CourtHandler) DeleteCourt(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("courtId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, err)
	}

	if err := h.svc.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURT_NOT_FOUND, err)
		}
		if errors.Is(err, repository.ErrInUse) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.COURT_HAS_RENTALS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
