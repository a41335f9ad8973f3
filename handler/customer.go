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

type CustomerService interface {
	All(ctx context.Context) (model.Customers, error)
	Get(ctx context.Context, id uint) (*model.Customer, error)
	Create(ctx context.Context, in model.CreateCustomerInput) (*model.Customer, error)
	Update(ctx context.Context, id uint, in model.EditCustomerInput) (*model.Customer, error)
	Delete(ctx context.Context, id uint) error
}

type CustomerHandler struct {
	svc CustomerService
}

func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.svc.All(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(customers)
}

func (h *CustomerHandler) GetCustomerById(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("customerId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, err)
	}

	customer, err := h.svc.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(customer)
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	input, ok := c.Locals("CreateCustomer").(model.CreateCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	customer, err := h.svc.Create(c.Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

func (h *CustomerHandler) EditCustomer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("customerId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, err)
	}

	input, ok := c.Locals("EditCustomer").(model.EditCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	customer, err := h.svc.Update(c.Context(), uint(id), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return c.Status(fiber.StatusOK).JSON(customer)
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("customerId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, err)
	}

	if err := h.svc.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
		}
		if errors.Is(err, repository.ErrInUse) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CUSTOMER_HAS_RENTALS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
