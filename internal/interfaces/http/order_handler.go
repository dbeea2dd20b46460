package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/ports"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
)

var orderMessages = errorMessages{
	notFound:  "pedido no encontrado",
	duplicate: "pedido duplicado",
}

// OrderHandler maneja las peticiones HTTP para Order y su comprobante PDF.
type OrderHandler struct {
	events   ports.OrderEventPublisher
	receipts ports.ReceiptGenerator
	policy   usecase.ListPolicy
}

// NewOrderHandler construye el handler.
func NewOrderHandler(events ports.OrderEventPublisher, receipts ports.ReceiptGenerator, policy usecase.ListPolicy) *OrderHandler {
	return &OrderHandler{events: events, receipts: receipts, policy: policy}
}

func (h *OrderHandler) uc(c *fiber.Ctx) *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(StoreFrom(c), h.events, h.policy)
}

// Create godoc
// @Summary      Crear pedido
// @Description  timestamp 0 u omitido se reemplaza por la hora del servidor (segundos Unix).
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderRequest  true  "Pedido"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc(c).Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, orderMessages)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido creado", ID: out.ID})
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc(c).GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, orderMessages)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos (mapa id → pedido)
// @Tags         orders
// @Produce      json
// @Success      200  {object}  map[string]dto.OrderSummary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /all_orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc(c).List(c.UserContext())
	if err != nil {
		return respondError(c, err, errorMessages{notFound: "no hay pedidos"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.OrderRequest  true  "Pedido"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc(c).Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, orderMessages)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido actualizado"})
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         orders
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc(c).Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, orderMessages)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido eliminado"})
}

// Receipt godoc
// @Summary      Descargar comprobante PDF del pedido
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	pdf, filename, err := usecase.NewReceiptUseCase(StoreFrom(c), h.receipts).Download(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, orderMessages)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
