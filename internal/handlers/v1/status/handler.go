package status

import (
	"errors"
	"net/http"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/logging"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
)

type Handler struct {
	Storage *storage.Storage
}

func NewHandler(s *storage.Storage) Handler {
	return Handler{Storage: s}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.Storage != nil && h.Storage.DB != nil {
		if err := h.Storage.DB.PingContext(req.Context()); err != nil {
			logData.AddData("dbError", err.Error())
			w.WriteHeader(http.StatusServiceUnavailable)
			return nil
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
