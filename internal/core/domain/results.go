package domain

import (
	"math"
	"strconv"
)

// PollResults is the tally of a poll at the moment it was computed.
type PollResults struct {
	PollID     int64          `json:"pollId"`
	Question   string         `json:"question"`
	TotalVotes int64          `json:"totalVotes"`
	Results    []OptionResult `json:"results"`
}

type OptionResult struct {
	OptionID   int64      `json:"optionId"`
	Option     string     `json:"option"`
	Votes      int64      `json:"votes"`
	Percentage Percentage `json:"percentage"`
}

// Percentage is a share in [0, 100] kept at two decimal places.
// It is encoded as a JSON number with exactly two decimals, e.g. 50.00.
type Percentage float64

// NewPercentage returns count/total as a percentage rounded half away from zero
// to two decimals. A zero total yields 0.
func NewPercentage(count, total int64) Percentage {
	if total == 0 {
		return 0
	}
	return Percentage(math.Round(float64(count)*10000/float64(total)) / 100)
}

func (p Percentage) String() string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}

func (p Percentage) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Percentage) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*p = Percentage(v)
	return nil
}
