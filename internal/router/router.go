package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/TalalZoabi/fullstack-bank/api/handler"
)

type Handlers struct {
	User   *apiHandler.UserHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Static routes before the parameterized sibling; the router resolves
	// the overlap in favour of the static match.
	r.GET("/users/active", handlers.User.GetActiveUsers)
	r.GET("/users/inactive", handlers.User.GetInactiveUsers)

	r.GET("/users", handlers.User.GetUsers)
	r.POST("/users", handlers.User.CreateUser)
	r.GET("/users/{id}", handlers.User.GetUser)
	r.PUT("/users/{id}", handlers.User.UpdateUser)
	r.DELETE("/users/{id}", handlers.User.DeleteUser)

	return r
}
