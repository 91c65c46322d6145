package channel_utils

import (
	"sync"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
)

func MergeChannels[T any](workerPool outbound.TaskDispatcher, channels ...<-chan T) (<-chan T, error) {
	var wg sync.WaitGroup
	merged := make(chan T)

	output := func(c <-chan T) {
		for val := range c {
			merged <- val
		}
		wg.Done()
	}

	// abandon releases fan-in workers already running when a later Submit
	// fails: the caller gets an error and never reads merged, and the pool
	// that just refused a task cannot run the cleanup itself.
	abandon := func() {
		go func() {
			wg.Wait()
			close(merged)
		}()
		go func() {
			for range merged {
			}
		}()
	}

	for _, c := range channels {
		ch := c
		wg.Add(1)
		err := workerPool.Submit(func() {
			output(ch)
		})
		if err != nil {
			wg.Done()
			abandon()
			return nil, err
		}
	}

	err := workerPool.Submit(func() {
		wg.Wait()
		close(merged)
	})
	if err != nil {
		abandon()
		return nil, err
	}

	return merged, nil
}
