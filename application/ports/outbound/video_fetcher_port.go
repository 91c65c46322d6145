package outbound

import "context"

type VideoFetcherPort interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
