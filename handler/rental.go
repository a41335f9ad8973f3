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

type RentalService interface {
	All(ctx context.Context) (model.Rentals, error)
	Get(ctx context.Context, id uint) (*model.Rental, error)
	ByCourt(ctx context.Context, courtID uint) (model.Rentals, error)
	Create(ctx context.Context, in model.CreateRentalInput) (*model.Rental, error)
	Update(ctx context.Context, id uint, in model.EditRentalInput) (*model.Rental, error)
	Delete(ctx context.Context, id uint) error
}

type RentalHandler struct {
	svc RentalService
}

func NewRentalHandler(svc RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

func (h *RentalHandler) GetRentals(c *fiber.Ctx) error {
	rentals, err := h.svc.All(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(rentals)
}

func (h *RentalHandler) GetRentalById(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("rentalId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, err)
	}

	rental, err := h.svc.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RENTAL_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(rental)
}

func (h *RentalHandler) GetRentalsByCourtId(c *fiber.Ctx) error {
	courtId, err := strconv.ParseUint(c.Params("courtId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, err)
	}

	rentals, err := h.svc.ByCourt(c.Context(), uint(courtId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(rentals)
}

func (h *RentalHandler) CreateRental(c *fiber.Ctx) error {
	input, ok := c.Locals("CreateRental").(model.CreateRentalInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	rental, err := h.svc.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyBooked) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.RENTAL_ALREADY_BOOKED, err)
		}
		if errors.Is(err, repository.ErrForeignKey) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.RENTAL_BAD_REFERENCE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rental)
}

func (h *RentalHandler) EditRental(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("rentalId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, err)
	}

	input, ok := c.Locals("EditRental").(model.EditRentalInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	rental, err := h.svc.Update(c.Context(), uint(id), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RENTAL_NOT_FOUND, err)
		}
		if errors.Is(err, repository.ErrAlreadyBooked) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.RENTAL_ALREADY_BOOKED, err)
		}
		if errors.Is(err, repository.ErrForeignKey) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.RENTAL_BAD_REFERENCE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return c.Status(fiber.StatusOK).JSON(rental)
}

func (h *RentalHandler) DeleteRental(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("rentalId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, err)
	}

	if err := h.svc.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RENTAL_NOT_FOUND, err)
		}
		if errors.Is(err, repository.ErrInUse) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.RENTAL_HAS_DEPENDENTS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
