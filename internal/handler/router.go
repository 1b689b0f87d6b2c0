package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/samanthagolden/speech-site/backend/internal/handler/chat"
	"github.com/samanthagolden/speech-site/backend/internal/handler/practice"
	middlewarePkg "github.com/samanthagolden/speech-site/backend/internal/middleware"
	practiceModel "github.com/samanthagolden/speech-site/backend/internal/model/practice"
	chatService "github.com/samanthagolden/speech-site/backend/internal/service/chat"
	"github.com/samanthagolden/speech-site/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(profile practiceModel.Practice, assistant chatService.Assistant) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	practiceHandler := practice.New(profile)
	chatHandler := chat.New(assistant)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The widget historically posted to the serverless function path.
	r.Handle(chat.LegacyFunctionPath, chatHandler)
	r.Handle("/chat", chatHandler)
	chatHandler.RegisterWebSocketRoutes(r)

	r.Route("/api", func(api chi.Router) {
		practiceHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
	})

	return r
}
