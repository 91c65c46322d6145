package domain

type TalkStatus string

const (
	TalkCreated TalkStatus = "created"
	TalkStarted TalkStatus = "started"
	TalkDone    TalkStatus = "done"
	TalkError   TalkStatus = "error"
)

type PipelineStage string

const (
	VoiceStage       PipelineStage = "voice"
	AvatarStage      PipelineStage = "avatar"
	AudioUploadStage PipelineStage = "audio_upload"
	VideoStage       PipelineStage = "video"
	PublishStage     PipelineStage = "publish"
	DoneStage        PipelineStage = "done"
)

func NewTalk(id string, userID string, script string, voiceID string) Talk {
	return Talk{
		ID:      id,
		UserID:  userID,
		Script:  script,
		VoiceID: voiceID,
		Status:  TalkCreated,
	}
}

type Talk struct {
	ID          string
	UserID      string
	Script      string
	VoiceID     string
	Status      TalkStatus
	ResultURL   string
	VideoKey    string
	VideoRegion string
}

// AvatarImage is the face the talk is rendered on. Content is empty when the
// default avatar file should be used.
type AvatarImage struct {
	Content  []byte
	FileName string
}

type StageEvent struct {
	TalkID      string        `json:"talk_id"`
	Stage       PipelineStage `json:"stage"`
	Message     string        `json:"message"`
	URL         string        `json:"url,omitempty"`
	VideoKey    string        `json:"video_key,omitempty"`
	VideoRegion string        `json:"video_region,omitempty"`
}

type TalkResult struct {
	TalkID      string `json:"talk_id"`
	ResultURL   string `json:"result_url"`
	VideoKey    string `json:"video_key"`
	VideoRegion string `json:"video_region"`
}

func (r TalkResult) ToEvent() StageEvent {
	return StageEvent{
		TalkID:      r.TalkID,
		Stage:       DoneStage,
		Message:     "video ready",
		URL:         r.ResultURL,
		VideoKey:    r.VideoKey,
		VideoRegion: r.VideoRegion,
	}
}
