package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
)

var customerMessages = errorMessages{
	notFound:  "cliente no encontrado",
	duplicate: "ya existe un cliente con ese nombre y teléfono",
}

// CustomerHandler maneja las peticiones HTTP para Customer.
// El caso de uso se construye por petición sobre la Store de la sesión.
type CustomerHandler struct {
	policy usecase.ListPolicy
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(policy usecase.ListPolicy) *CustomerHandler {
	return &CustomerHandler{policy: policy}
}

func (h *CustomerHandler) uc(c *fiber.Ctx) *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(StoreFrom(c), h.policy)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "Nombre y teléfono"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc(c).Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, customerMessages)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente creado", ID: out.ID})
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc(c).GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, customerMessages)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes (mapa id → cliente)
// @Tags         customers
// @Produce      json
// @Success      200  {object}  map[string]dto.CustomerSummary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /all_customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc(c).List(c.UserContext())
	if err != nil {
		return respondError(c, err, errorMessages{notFound: "no hay clientes"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.CustomerRequest  true  "Nombre y teléfono"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc(c).Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, customerMessages)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente actualizado"})
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc(c).Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, customerMessages)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado"})
}
