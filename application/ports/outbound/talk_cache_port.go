package outbound

import (
	"context"

	"github.com/corboo/claire-video-generator/domain"
)

type TalkCachePort interface {
	Save(ctx context.Context, talk domain.Talk) error
}
