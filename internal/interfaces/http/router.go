package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-api/internal/application/ports"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// Recursos usados como llave de invalidación de la caché.
const (
	resourceCustomers = "customers"
	resourceItems     = "items"
	resourceOrders    = "orders"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Stores     repository.StoreProvider
	Events     ports.OrderEventPublisher
	Receipts   ports.ReceiptGenerator
	Cache      *ResponseCache // nil: sin caché
	ListPolicy usecase.ListPolicy
	JWTSecret  string // vacío: escrituras sin token
}

// Router registra las rutas de la API. La sesión de base de datos se abre solo en las
// rutas que la usan y después de la caché, para que un HIT no tome conexión.
func Router(app *fiber.App, deps RouterDeps) {
	sess := SessionMiddleware(deps.Stores)
	auth := AuthMiddleware(deps.JWTSecret)
	cache := deps.Cache

	// Customers
	customerHandler := NewCustomerHandler(deps.ListPolicy)
	customers := app.Group("/customers")
	customers.Post("/", auth, cache.Invalidate(resourceCustomers), sess, customerHandler.Create)
	customers.Get("/:id", cache.Read(resourceCustomers), sess, customerHandler.GetByID)
	customers.Put("/:id", auth, cache.Invalidate(resourceCustomers), sess, customerHandler.Update)
	customers.Delete("/:id", auth, cache.Invalidate(resourceCustomers), sess, customerHandler.Delete)
	app.Get("/all_customers", cache.Read(resourceCustomers), sess, customerHandler.List)

	// Items
	itemHandler := NewItemHandler(deps.ListPolicy)
	items := app.Group("/items")
	items.Post("/", auth, cache.Invalidate(resourceItems), sess, itemHandler.Create)
	items.Get("/:id", cache.Read(resourceItems), sess, itemHandler.GetByID)
	items.Put("/:id", auth, cache.Invalidate(resourceItems), sess, itemHandler.Update)
	items.Delete("/:id", auth, cache.Invalidate(resourceItems), sess, itemHandler.Delete)
	app.Get("/all_items", cache.Read(resourceItems), sess, itemHandler.List)

	// Orders (el comprobante no se cachea)
	orderHandler := NewOrderHandler(deps.Events, deps.Receipts, deps.ListPolicy)
	orders := app.Group("/orders")
	orders.Post("/", auth, cache.Invalidate(resourceOrders), sess, orderHandler.Create)
	orders.Get("/:id", cache.Read(resourceOrders), sess, orderHandler.GetByID)
	orders.Get("/:id/receipt", sess, orderHandler.Receipt)
	orders.Put("/:id", auth, cache.Invalidate(resourceOrders), sess, orderHandler.Update)
	orders.Delete("/:id", auth, cache.Invalidate(resourceOrders), sess, orderHandler.Delete)
	app.Get("/all_orders", cache.Read(resourceOrders), sess, orderHandler.List)
}
