package atexit

import (
	"sync"

	hooks "github.com/tebeka/atexit"
)

// Registry is a table of shutdown functions. The zero value is ready to use
// and safe for concurrent use.
type Registry struct {
	funcs []func()
	mu    sync.Mutex
}

// Register adds fn to the registry. Nil functions are ignored.
func (r *Registry) Register(fn func()) {
	if fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.funcs = append(r.funcs, fn)
}

// Len returns the number of functions waiting to run.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.funcs)
}

// Run removes every registered function and calls them, most recently
// registered first. Functions registered while Run is in progress are run
// by the same call. A panicking function stops the drain; the remaining
// functions stay registered for the next Run.
func (r *Registry) Run() {
	for {
		fn, ok := r.pop()
		if !ok {
			return
		}

		fn()
	}
}

func (r *Registry) pop() (func(), bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.funcs)
	if n == 0 {
		return nil, false
	}

	fn := r.funcs[n-1]
	r.funcs[n-1] = nil
	r.funcs = r.funcs[:n-1]

	return fn, true
}

// Default is the process-wide [Registry]. It is drained by the exit
// handlers of [github.com/tebeka/atexit], so programs that exit through
// that package also flush Default.
var Default = &Registry{}

var _ = hooks.Register(func() { Default.Run() })

// Register adds fn to [Default].
func Register(fn func()) {
	Default.Register(fn)
}

// Run drains [Default].
func Run() {
	Default.Run()
}

// Exit drains [Default], runs the other handlers registered with
// [github.com/tebeka/atexit], and terminates the process with code.
func Exit(code int) {
	Run()
	hooks.Exit(code)
}
