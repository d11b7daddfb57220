package domain

import "time"

type Poll struct {
	ID          int64        `json:"id"`
	Question    string       `json:"question"`
	IsPublished bool         `json:"isPublished"`
	CreatorID   int64        `json:"creatorId"`
	CreatedAt   time.Time    `json:"createdAt"`
	Options     []PollOption `json:"options"`
}

type PollOption struct {
	ID     int64  `json:"id"`
	PollID int64  `json:"pollId"`
	Text   string `json:"text"`
	Votes  []Vote `json:"votes,omitempty"`
}

// HasOption reports whether optionID is one of the poll's options.
func (p *Poll) HasOption(optionID int64) bool {
	for _, opt := range p.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}
