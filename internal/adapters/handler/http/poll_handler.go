package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
	results ports.ResultsService
	log     *slog.Logger
}

func NewPollHandler(service ports.PollService, results ports.ResultsService, log *slog.Logger) *PollHandler {
	return &PollHandler{
		service: service,
		results: results,
		log:     log,
	}
}

type createPollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// CreatePoll godoc
// @Summary      Creates a poll owned by the caller
// @Tags         polls
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400
// @Failure      401
// @Router       /polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, h.log, domain.ErrMissingToken)
		return
	}

	var req createPollRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, domain.ErrInvalidPoll)
		return
	}

	poll, err := h.service.Create(r.Context(), ports.CreatePollInput{
		Question:  req.Question,
		Options:   req.Options,
		CreatorID: identity.UserID,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, poll)
}

func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.ListPolls(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, polls)
}

func (h *PollHandler) MyPolls(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, h.log, domain.ErrMissingToken)
		return
	}

	polls, err := h.service.ListByCreator(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, polls)
}

// Results godoc
// @Summary      Current tally of a poll
// @Tags         polls
// @Produce      json
// @Param        id   path      int  true  "Poll ID"
// @Success      200
// @Failure      400
// @Failure      404
// @Router       /polls/{id}/results [get]
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	pollID, err := pollIDParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	results, err := h.results.Results(r.Context(), pollID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, results)
}
