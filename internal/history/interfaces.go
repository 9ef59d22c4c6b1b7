package history

// Executor is the single synchronization domain of a screen. Post must not
// block and must run functions one at a time in submission order.
//
// [workers.Dispatcher] is the production implementation.
type Executor interface {
	Post(fn func())
}

// Listener receives every [ListChanged] event, on the executor.
type Listener func(event ListChanged)
