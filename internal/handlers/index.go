package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/views"
)

// NewIndexHandler renders the home page with the user's fridge.
func NewIndexHandler(svc FridgeLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}

		data := map[string]any{
			"Username": claims.Username,
			"Error":    r.URL.Query().Get("error"),
		}

		items, err := svc.GetFridge(r.Context(), claims.UserID)
		if err != nil {
			status, msg := serviceError(err)
			logger.FromContext(r.Context()).Errorw("failed to get fridge", "user_id", claims.UserID, "error", err)
			data["Error"] = msg
			renderPage(w, r, status, views.PageIndex, data)
			return
		}

		data["Items"] = items
		renderPage(w, r, http.StatusOK, views.PageIndex, data)
	}
}
