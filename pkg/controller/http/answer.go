package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
)

type answerErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// plantQAHandler answers {plantName, scientificName, question?, type?} with
// {data} or {error, details?}. The status code follows the failure kind.
func (s *Server) plantQAHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AnswerRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		logging.From(ctx).Info("malformed answer request", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, answerErrorResponse{
			Error:   "invalid request body",
			Details: err.Error(),
		})
		return
	}

	if s.answerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.answerTimeout)
		defer cancel()
	}

	envelope := s.answer.Answer(ctx, &req)
	if envelope.Succeeded() {
		writeJSON(ctx, w, http.StatusOK, envelope.Body())
		return
	}

	status := envelope.Failure.Kind.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logging.From(ctx).Warn("answer request failed",
			"kind", envelope.Failure.Kind,
			"error", envelope.Failure.Error,
		)
	}
	writeJSON(ctx, w, status, envelope.Body())
}
