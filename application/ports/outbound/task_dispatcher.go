package outbound

// TaskDispatcher abstracts the shared worker pool so services never spawn
// goroutines of their own.
type TaskDispatcher interface {
	Submit(task func()) error
}
