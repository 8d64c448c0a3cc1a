package routes

import (
	"net/http"

	"empirek/app/controllers"
	"empirek/app/middleware"
	"empirek/app/notify"
	"empirek/app/repositories"
	"empirek/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services and controllers onto a router.
// Everything under /api/admin requires the moderator bearer token.
func SetupRoutes(db *badger.DB, mailer notify.Mailer, operatorEmail, moderatorTokenHash string) *mux.Router {
	commentRepo := repositories.NewBadgerCommentRepository(db)
	faqRepo := repositories.NewBadgerFaqRepository(db)
	contactRepo := repositories.NewBadgerContactRepository(db)

	commentService := services.NewCommentService(commentRepo)
	faqService := services.NewFaqService(faqRepo)
	contactService := services.NewContactService(contactRepo, mailer, operatorEmail)

	commentController := controllers.NewCommentController(commentService)
	faqController := controllers.NewFaqController(faqService)
	contactController := controllers.NewContactController(contactService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	api := router.PathPrefix("/api").Subrouter()

	// Public intake and read endpoints
	api.HandleFunc("/contact", contactController.Create).Methods("POST")
	api.HandleFunc("/posts/{postId}/comments", commentController.Index).Methods("GET")
	api.HandleFunc("/posts/{postId}/comments", commentController.Create).Methods("POST")
	api.HandleFunc("/faqs", faqController.Index).Methods("GET")
	api.HandleFunc("/faqs/questions", faqController.Ask).Methods("POST")

	// Moderation endpoints
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireModerator(moderatorTokenHash))
	admin.HandleFunc("/faqs/pending", faqController.Pending).Methods("GET")
	admin.HandleFunc("/faqs/{id:[0-9]+}/answer", faqController.Answer).Methods("POST")
	admin.HandleFunc("/faqs/{id:[0-9]+}/visibility", faqController.Visibility).Methods("POST")
	admin.HandleFunc("/comments", commentController.AdminIndex).Methods("GET")
	admin.HandleFunc("/comments/{id:[0-9]+}", commentController.Delete).Methods("DELETE")
	admin.HandleFunc("/contact-messages", contactController.AdminIndex).Methods("GET")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
