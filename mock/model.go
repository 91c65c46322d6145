package mock_generator

import "github.com/corboo/claire-video-generator/domain"

// MockStageEvent is a canned pipeline event with a replay delay in seconds.
type MockStageEvent struct {
	domain.StageEvent
	Delay int `json:"delay"`
}
