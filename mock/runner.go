package mock_generator

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
	"github.com/corboo/claire-video-generator/domain"
)

const stagesFileName = "mock/stages.json"

// Runner replays a canned talk pipeline so the web UI can be developed
// without spending provider credits.
type Runner struct {
	logger      outbound.LoggerPort
	workerPool  outbound.TaskDispatcher
	stageReader StageReader
}

func NewRunner(workerPool outbound.TaskDispatcher, stageReader StageReader, logger outbound.LoggerPort) *Runner {
	return &Runner{
		logger:      logger,
		workerPool:  workerPool,
		stageReader: stageReader,
	}
}

func (r *Runner) Run(ctx context.Context) (<-chan domain.StageEvent, <-chan error) {
	out := make(chan domain.StageEvent)
	errCh := make(chan error, 5)

	talkID := uuid.NewString()

	err := r.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)

		mockEvents, err := r.stageReader.Read(stagesFileName)
		if err != nil {
			r.logger.Error(err, "failed to read canned stage events")
			errCh <- err
			return
		}

		for _, mockEvent := range mockEvents {
			select {
			case <-ctx.Done():
				return
			default:
				time.Sleep(time.Duration(mockEvent.Delay) * time.Second)
				out <- domain.StageEvent{
					TalkID:  talkID,
					Stage:   mockEvent.Stage,
					Message: mockEvent.Message,
					URL:     mockEvent.URL,
				}
			}
		}
		r.logger.Info("finished replaying canned stage events")
	})
	if err != nil {
		// The worker never ran, so nothing else will close the channels
		// and unblock the caller's drain loop.
		errCh <- err
		close(errCh)
		close(out)
	}

	return out, errCh
}
