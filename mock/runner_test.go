package mock_generator

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/corboo/claire-video-generator/infrastructure/adapters"
)

type failingDispatcher struct {
	err error
}

func (f failingDispatcher) Submit(func()) error { return f.err }

func TestRunner_Run_SubmitFailure(t *testing.T) {
	logger := adapters.NewZerologWrapperTo(io.Discard)
	runner := NewRunner(failingDispatcher{err: errors.New("pool is closed")}, NewFileStageReader(logger), logger)

	events, errCh := runner.Run(context.Background())

	var err error
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for events != nil || errCh != nil {
			select {
			case _, ok := <-events:
				if !ok {
					events = nil
				}
			case runErr, ok := <-errCh:
				if !ok {
					errCh = nil
					continue
				}
				if err == nil {
					err = runErr
				}
			}
		}
	}()

	select {
	case <-drained:
	case <-time.After(2 * time.Second):
		t.Fatal("stage and error channels never closed after a dispatch failure")
	}
	if err == nil {
		t.Fatal("expected a dispatch error")
	}
}
