package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
	log     *slog.Logger
}

func NewVoteHandler(service ports.VoteService, log *slog.Logger) *VoteHandler {
	return &VoteHandler{
		service: service,
		log:     log,
	}
}

type voteRequest struct {
	OptionID json.Number `json:"optionId"`
}

// VoteOnPoll godoc
// @Summary      Casts the caller's single vote on a poll
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Poll ID"
// @Success      200
// @Failure      400
// @Failure      401
// @Router       /polls/{id}/vote [post]
func (h *VoteHandler) VoteOnPoll(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, h.log, domain.ErrMissingToken)
		return
	}

	pollID, err := pollIDParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, domain.ErrInvalidOption)
		return
	}
	optionID, err := req.OptionID.Int64()
	if err != nil {
		writeError(w, r, h.log, domain.ErrInvalidOption)
		return
	}

	input := ports.VoteInput{
		PollID:   pollID,
		OptionID: optionID,
		UserID:   identity.UserID,
	}
	if err := h.service.Vote(r.Context(), input); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, messageResponse{Message: "Vote recorded"})
}

func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.service.ListVotes(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, votes)
}
