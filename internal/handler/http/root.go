package http

import (
	"net/http"

	"github.com/MKhiriev/acquasitions/internal/utils"
)

const greetingText = "Hello from acquasitions"

func (h *Handler) greeting(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, greetingText, http.StatusOK)
}
