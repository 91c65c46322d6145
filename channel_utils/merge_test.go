package channel_utils

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
)

type flakyDispatcher struct {
	failAfter int
	calls     int
}

func (f *flakyDispatcher) Submit(task func()) error {
	f.calls++
	if f.calls > f.failAfter {
		return errors.New("pool is closed")
	}
	go task()
	return nil
}

func TestMergeChannels(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("failed to create worker pool:", err)
	}
	defer workerPool.Release()

	first := make(chan int)
	second := make(chan int)

	go func() {
		defer close(first)
		first <- 1
		first <- 2
	}()
	go func() {
		defer close(second)
		second <- 3
	}()

	merged, err := MergeChannels[int](workerPool, first, second)
	if err != nil {
		t.Fatal("failed to merge channels:", err)
	}

	var values []int
	for val := range merged {
		values = append(values, val)
	}

	sort.Ints(values)
	if len(values) != 3 || values[0] != 1 || values[1] != 2 || values[2] != 3 {
		t.Fatal("unexpected merged values:", values)
	}
}

func TestMergeChannels_ClosesWhenSourcesClose(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("failed to create worker pool:", err)
	}
	defer workerPool.Release()

	empty := make(chan error)
	close(empty)

	merged, err := MergeChannels[error](workerPool, empty)
	if err != nil {
		t.Fatal("failed to merge channels:", err)
	}

	if _, ok := <-merged; ok {
		t.Fatal("expected merged channel to close without values")
	}
}

func TestMergeChannels_ReleasesWorkersOnSubmitFailure(t *testing.T) {
	first := make(chan error, 1)
	first <- errors.New("stage failed")
	close(first)
	second := make(chan error)

	if _, err := MergeChannels[error](&flakyDispatcher{failAfter: 1}, first, second); err == nil {
		t.Fatal("expected a dispatch error")
	}

	// The fan-in worker for the first channel is already running and must
	// drain its source even though the caller never reads merged.
	deadline := time.After(2 * time.Second)
	for len(first) > 0 {
		select {
		case <-deadline:
			t.Fatal("fan-in worker never drained its source after a dispatch failure")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}
