package outbound

import "context"

type PublishVideoRequest struct {
	TalkID  string
	UserID  string
	Content []byte
}

type PublishVideoResponse struct {
	VideoKey    string
	StoreRegion string
}

type VideoPublisherPort interface {
	Publish(ctx context.Context, req PublishVideoRequest) (*PublishVideoResponse, error)
}
