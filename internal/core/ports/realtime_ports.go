package ports

import (
	"context"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

//go:generate mockgen -source=realtime_ports.go -destination=mocks/realtime_ports_mock.go -package=mocks

// ResultsBroadcaster delivers fresh results to whoever is watching the poll.
// Delivery is best effort: an error means nothing was sent, a nil error does
// not mean every watcher received it.
type ResultsBroadcaster interface {
	Broadcast(ctx context.Context, results *domain.PollResults) error
}
