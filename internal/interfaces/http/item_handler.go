package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
)

var itemMessages = errorMessages{
	notFound:  "artículo no encontrado",
	duplicate: "ya existe un artículo con ese nombre",
}

// ItemHandler maneja las peticiones HTTP para Item.
type ItemHandler struct {
	policy usecase.ListPolicy
}

// NewItemHandler construye el handler.
func NewItemHandler(policy usecase.ListPolicy) *ItemHandler {
	return &ItemHandler{policy: policy}
}

func (h *ItemHandler) uc(c *fiber.Ctx) *usecase.ItemUseCase {
	return usecase.NewItemUseCase(StoreFrom(c), h.policy)
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "Nombre y precio"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc(c).Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, itemMessages)
	}
	return c.JSON(dto.MessageResponse{Message: "artículo creado", ID: out.ID})
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc(c).GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, itemMessages)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar artículos (mapa id → artículo)
// @Tags         items
// @Produce      json
// @Success      200  {object}  map[string]dto.ItemSummary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /all_items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc(c).List(c.UserContext())
	if err != nil {
		return respondError(c, err, errorMessages{notFound: "no hay artículos"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del artículo"
// @Param        body  body  dto.ItemRequest  true  "Nombre y precio"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc(c).Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, itemMessages)
	}
	return c.JSON(dto.MessageResponse{Message: "artículo actualizado"})
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         items
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc(c).Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, itemMessages)
	}
	return c.JSON(dto.MessageResponse{Message: "artículo eliminado"})
}
