package app

import (
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/handlers"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/middleware"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(
	checkout *handlers.CheckoutHandler,
	itn *handlers.PayfastHandler,
	limiter *middleware.IPRateLimiter,
	admins gin.Accounts,
) {
	orders := a.Router.Group("/orders", limiter.Middleware())
	orders.POST("", checkout.PlaceOrder)
	orders.GET("/:id", checkout.GetOrder)
	orders.POST("/:id/checkout", checkout.StartCheckout)
	orders.GET("/:id/checkout/form", checkout.CheckoutForm)

	// never rate limited: the gateway must always get its 200
	a.Router.POST(payfast.NotifyPath, itn.Notify)

	// the ITN audit trail carries rejection reasons and is operators only
	if len(admins) > 0 {
		admin := a.Router.Group("/admin", gin.BasicAuth(admins))
		admin.GET("/orders/:id/notifications", itn.History)
	}

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
