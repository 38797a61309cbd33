package routes

import (
	"net/http"

	"bakehouse/auth"
	"bakehouse/cart"
	"bakehouse/catalog"
	"bakehouse/contact"
	"bakehouse/middleware"
	"bakehouse/orders"
	"bakehouse/profile"
	"bakehouse/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddCatalogRoutes(router *httprouter.Router, h *catalog.Handler) {
	router.GET("/api/catalog", h.ListProducts)
	router.POST("/api/catalog/image", middleware.Authenticate(h.UploadProductImage))
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.POST("/api/cart/add", middleware.Authenticate(h.AddToCart))
	router.GET("/api/cart", middleware.Authenticate(h.GetCart))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/submit", rl.Limit(middleware.Authenticate(orders.PlaceOrder)))
	router.GET("/api/orders", middleware.Authenticate(orders.ListOrders))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(orders.PrintInvoice))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfileData))
	router.PUT("/api/profile", middleware.Authenticate(profile.EditProfile))
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(contact.SubmitContact))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/*filepath", http.Dir("./static"))
}
