package repository

import (
	"context"
	"time"
)

// queryTimeout bounds every store call so a stuck connection cannot hang a
// request indefinitely.
const queryTimeout = 5 * time.Second

func queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
