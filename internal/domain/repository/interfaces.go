package repository

import (
	"context"
)

// UsageMeter counts successful predictions per caller and endpoint.
type UsageMeter interface {
	Increment(ctx context.Context, caller, endpoint string) error
	Usage(ctx context.Context, caller string) (map[string]int64, error)
}
