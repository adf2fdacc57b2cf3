// Package main is the entry point for the cart-service application.
//
// @title           Cart Service API
// @version         1.0.0
// @description     Session-scoped shopping cart and checkout for the food delivery storefront.
//
//	Each browser session owns one cart. Carts are kept in memory, persisted
//	as snapshots after every change and submitted to the order API at checkout.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/cart-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" issued by the auth API. Required for checkout when authentication is enabled.
//
// @tag.name        Cart
// @tag.description Cart operations for the current session
//
// @tag.name        Checkout
// @tag.description Order submission
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/guttosm/cart-service/docs" // swagger docs
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
