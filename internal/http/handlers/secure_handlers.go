package handlers

import "net/http"

// SecureMessage godoc
// @Summary Acknowledge that the caller passed the authentication gate
// @Tags secure
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResult
// @Failure 401 {string} string "Unauthorized"
// @Router /api/secure [get]
func SecureMessage(w http.ResponseWriter, r *http.Request) {
	mustWriteJSON(w, http.StatusOK, MessageResult{
		Message: "you have access because you are authenticated",
	})
}
