package domain

import "time"

type Vote struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	PollID    int64     `json:"pollId"`
	OptionID  int64     `json:"pollOptionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// VoteDetail is a vote joined with its voter, poll and option.
type VoteDetail struct {
	VoteID       int64  `json:"voteId"`
	User         string `json:"user"`
	PollQuestion string `json:"pollQuestion"`
	ChosenOption string `json:"chosenOption"`
}
