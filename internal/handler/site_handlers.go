package handler

import (
	"net/http"

	"github.com/mtlprog/antiptrn/internal/static"
)

// handleIndex serves the embedded landing page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.IndexHTML))
}

// handleInstallRedirect sends /install to the install script.
func (h *Handler) handleInstallRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/install.sh", http.StatusFound)
}

// handleInstallScript serves the embedded install script.
func (h *Handler) handleInstallScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/x-shellscript; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.InstallSh))
}

// handlePromptMd serves the embedded instruction file for AI assistants.
func (h *Handler) handlePromptMd(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.PromptMd))
}
