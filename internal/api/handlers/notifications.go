package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"mandoob-route-service/internal/api/dto"
	"mandoob-route-service/internal/domain"
	"mandoob-route-service/internal/ingest"
)

// NotificationHandler turns platform notification text into order drafts.
type NotificationHandler struct {
	Parser *ingest.Parser
}

// Parse handles POST /notifications/parse. The returned draft is not
// persisted; the client creates the order explicitly if the driver accepts
// it.
func (h *NotificationHandler) Parse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ParseNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.NotificationText) == "" {
		writeError(w, r, http.StatusBadRequest, "notification_text is required")
		return
	}

	var hint domain.SourceApp
	if req.AppName != "" {
		hint = domain.ParseSourceApp(req.AppName)
	}

	draft, err := h.Parser.Parse(req.NotificationText, hint)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, toOrderResponse(draft))
}
