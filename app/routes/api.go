// Package routes wires the HTTP surface: public auth endpoints, the
// authenticated shop API, the admin-gated back office, and the ambient
// health and metrics endpoints.
package routes

import (
	"github.com/shashiranjanraj/sweetshop/app/controllers"
	"github.com/shashiranjanraj/sweetshop/pkg/metrics"
	"github.com/shashiranjanraj/sweetshop/pkg/middleware"
	"github.com/shashiranjanraj/sweetshop/pkg/router"
)

// Controllers bundles the handler set Register mounts.
type Controllers struct {
	Auth  *controllers.AuthController
	Sweet *controllers.SweetController
	Cart  *controllers.CartController
	Order *controllers.OrderController
}

// Register mounts every route on r.
func Register(r *router.Router, c Controllers) {
	r.Get("/health", "health", controllers.Health)
	r.HandleFunc("/metrics", metrics.Handler())

	api := r.Group("/api")

	api.Post("/auth/register", "auth.register", c.Auth.Register)
	api.Post("/auth/login", "auth.login", c.Auth.Login)

	authed := api.Group("", middleware.Authenticate)

	authed.Get("/sweets", "sweets.list", c.Sweet.List)
	authed.Get("/sweets/search", "sweets.search", c.Sweet.Search)
	authed.Post("/sweets/{id}/purchase", "sweets.purchase", c.Sweet.Purchase)

	admin := authed.Group("", middleware.RequireAdmin)
	admin.Post("/sweets", "sweets.create", c.Sweet.Create)
	admin.Put("/sweets/{id}", "sweets.update", c.Sweet.Update)
	admin.Delete("/sweets/{id}", "sweets.delete", c.Sweet.Delete)
	admin.Post("/sweets/{id}/restock", "sweets.restock", c.Sweet.Restock)

	authed.Post("/cart/add", "cart.add", c.Cart.Add)
	authed.Get("/cart", "cart.list", c.Cart.List)
	authed.Put("/cart/{id}", "cart.update", c.Cart.Update)
	authed.Delete("/cart/{id}", "cart.remove", c.Cart.Remove)
	authed.Delete("/cart", "cart.clear", c.Cart.Clear)

	authed.Get("/orders", "orders.list", c.Order.ListOwn)
	admin.Get("/orders/admin/all", "orders.admin.list", c.Order.ListAll)
	admin.Put("/orders/admin/{id}/status", "orders.admin.status", c.Order.UpdateStatus)
	admin.Get("/orders/admin/analytics", "orders.admin.analytics", c.Order.Analytics)
}
