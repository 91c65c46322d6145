package outbound

import "context"

type MediaKind string

const (
	ImageMediaKind MediaKind = "image"
	AudioMediaKind MediaKind = "audio"
)

type UploadMediaRequest struct {
	Content  []byte
	Kind     MediaKind
	FileName string
}

// MediaUploaderPort hands a media blob to the video provider and returns the
// URL under which the provider stored it.
type MediaUploaderPort interface {
	Upload(ctx context.Context, req UploadMediaRequest) (string, error)
}
