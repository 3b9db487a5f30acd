package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventlane/internal/delivery/http/controllers"
)

// Controllers groups the main service controllers for router wiring.
type Controllers struct {
	PublicEvents  *controllers.PublicEventController
	AdminEvents   *controllers.AdminEventController
	PrivateEvents *controllers.PrivateEventController
	Requests      *controllers.RequestController
	Categories    *controllers.CategoryController
	Users         *controllers.UserController
	Compilations  *controllers.CompilationController
	Comments      *controllers.CommentController
}

// NewRouter initializes the HTTP router with all main service routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /events", c.PublicEvents.Search)
	mux.HandleFunc("GET /events/{eventId}", c.PublicEvents.GetByID)
	mux.HandleFunc("GET /categories", c.Categories.List)
	mux.HandleFunc("GET /categories/{categoryId}", c.Categories.Get)
	mux.HandleFunc("GET /compilations", c.Compilations.List)
	mux.HandleFunc("GET /compilations/{compId}", c.Compilations.Get)
	mux.HandleFunc("GET /events/comments/{eventId}", c.Comments.ListByEvent)

	// Private
	mux.HandleFunc("GET /users/{userId}/events", c.PrivateEvents.List)
	mux.HandleFunc("POST /users/{userId}/events", c.PrivateEvents.Create)
	mux.HandleFunc("GET /users/{userId}/events/{eventId}", c.PrivateEvents.Get)
	mux.HandleFunc("PATCH /users/{userId}/events/{eventId}", c.PrivateEvents.Update)
	mux.HandleFunc("GET /users/{userId}/events/{eventId}/requests", c.PrivateEvents.ListRequests)
	mux.HandleFunc("PATCH /users/{userId}/events/{eventId}/requests", c.PrivateEvents.UpdateRequests)
	mux.HandleFunc("GET /users/{userId}/requests", c.Requests.List)
	mux.HandleFunc("POST /users/{userId}/requests", c.Requests.Create)
	mux.HandleFunc("PATCH /users/{userId}/requests/{requestId}/cancel", c.Requests.Cancel)
	mux.HandleFunc("POST /events/{eventId}/comments/{userId}", c.Comments.Add)
	mux.HandleFunc("DELETE /events/comments/{eventId}/{commentId}/{userId}", c.Comments.Delete)

	// Admin
	mux.HandleFunc("GET /admin/events", c.AdminEvents.Search)
	mux.HandleFunc("PATCH /admin/events/{eventId}", c.AdminEvents.Update)
	mux.HandleFunc("POST /admin/categories", c.Categories.Create)
	mux.HandleFunc("PATCH /admin/categories/{categoryId}", c.Categories.Update)
	mux.HandleFunc("DELETE /admin/categories/{categoryId}", c.Categories.Delete)
	mux.HandleFunc("POST /admin/users", c.Users.Create)
	mux.HandleFunc("GET /admin/users", c.Users.List)
	mux.HandleFunc("DELETE /admin/users/{userId}", c.Users.Delete)
	mux.HandleFunc("POST /admin/compilations", c.Compilations.Create)
	mux.HandleFunc("PATCH /admin/compilations/{compId}", c.Compilations.Update)
	mux.HandleFunc("DELETE /admin/compilations/{compId}", c.Compilations.Delete)
	mux.HandleFunc("DELETE /admin/comments/{commentId}", c.Comments.DeleteByAdmin)
	mux.HandleFunc("GET /admin/comments/{userId}", c.Comments.ListByAuthor)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewStatsRouter initializes the statistics service router.
func NewStatsRouter(stats *controllers.StatsController) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /hit", stats.Hit)
	mux.HandleFunc("GET /stats", stats.GetStats)

	return mux
}
