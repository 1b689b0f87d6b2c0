package practice

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samanthagolden/speech-site/backend/internal/model/practice"
	"github.com/samanthagolden/speech-site/backend/pkg/utils"
)

// Handler exposes the practice profile the assistant answers from.
type Handler struct {
	profile practice.Practice
}

// New 创建practice处理器
func New(profile practice.Practice) *Handler {
	return &Handler{profile: profile}
}

// RegisterRoutes 注册practice相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/practice", h.handleGetPractice)
}

func (h *Handler) handleGetPractice(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.profile)
}
