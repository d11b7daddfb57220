package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid data")
	ErrInvalidPoll        = errors.New("poll must have a question and at least 2 options")
	ErrInvalidPollID      = errors.New("invalid poll id")
	ErrInvalidOption      = errors.New("invalid option for this poll")
	ErrPollNotFound       = errors.New("poll not found")
	ErrAlreadyVoted       = errors.New("user already voted")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("missing bearer token")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInternal           = errors.New("internal server error")
)

// ErrorKind groups domain errors by how they are reported to callers.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuth
	KindConflict
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrInvalidInput, KindValidation},
	{ErrInvalidPoll, KindValidation},
	{ErrInvalidPollID, KindValidation},
	{ErrInvalidOption, KindValidation},
	{ErrMissingToken, KindAuth},
	{ErrInvalidToken, KindAuth},
	{ErrInvalidCredentials, KindAuth},
	{ErrUserExists, KindConflict},
	{ErrAlreadyVoted, KindConflict},
	{ErrPollNotFound, KindNotFound},
}

// Classify returns the kind of err together with the sentinel that matched it.
// Errors that match no sentinel are internal and come back as ErrInternal.
func Classify(err error) (ErrorKind, error) {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind, k.err
		}
	}
	return KindInternal, ErrInternal
}
