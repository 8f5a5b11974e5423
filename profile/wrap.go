package profile

import (
	"context"
	"iter"
)

// Func wraps fn so that every call is timed by p.
//
// Panics propagate and record no sample.
func Func[A, R any](p *Profiler, fn func(A) R) func(A) R {
	p.bind(fn)

	return func(a A) R {
		sw := p.stopwatch()
		sw.Start()

		r := fn(a)

		sw.Stop()
		p.record(sw.Elapsed())

		return r
	}
}

// FuncErr wraps fn so that every successful call is timed by p. Calls that
// return an error record no sample; the error is returned unchanged.
func FuncErr[A, R any](p *Profiler, fn func(A) (R, error)) func(A) (R, error) {
	p.bind(fn)

	return func(a A) (R, error) {
		var r R

		sw := p.stopwatch()

		err := sw.Time(func() error {
			var err error

			r, err = fn(a)

			return err
		})
		if err != nil {
			return r, err
		}

		p.record(sw.Elapsed())

		return r, nil
	}
}

// Func0 is [Func] for functions without an argument.
func Func0[R any](p *Profiler, fn func() R) func() R {
	p.bind(fn)

	wrapped := Func(p, func(struct{}) R { return fn() })

	return func() R { return wrapped(struct{}{}) }
}

// FuncErr0 is [FuncErr] for functions without an argument.
func FuncErr0[R any](p *Profiler, fn func() (R, error)) func() (R, error) {
	p.bind(fn)

	wrapped := FuncErr(p, func(struct{}) (R, error) { return fn() })

	return func() (R, error) { return wrapped(struct{}{}) }
}

// Seq wraps a sequence constructor. One sample covers a whole iteration,
// from its start until the sequence is exhausted or the consumer stops
// early. Elements pass through unchanged.
func Seq[A, V any](p *Profiler, fn func(A) iter.Seq[V]) func(A) iter.Seq[V] {
	p.bind(fn)

	return func(a A) iter.Seq[V] {
		seq := fn(a)

		return func(yield func(V) bool) {
			sw := p.stopwatch()
			sw.Start()

			for v := range seq {
				if !yield(v) {
					break
				}
			}

			sw.Stop()
			p.record(sw.Elapsed())
		}
	}
}

// Seq2 is [Seq] for [iter.Seq2].
func Seq2[A, K, V any](p *Profiler, fn func(A) iter.Seq2[K, V]) func(A) iter.Seq2[K, V] {
	p.bind(fn)

	return func(a A) iter.Seq2[K, V] {
		seq := fn(a)

		return func(yield func(K, V) bool) {
			sw := p.stopwatch()
			sw.Start()

			for k, v := range seq {
				if !yield(k, v) {
					break
				}
			}

			sw.Stop()
			p.record(sw.Elapsed())
		}
	}
}

// Async wraps fn, which delivers one result on the returned channel. The
// sample covers the time from the call until the result arrives, and is
// recorded before the result is passed on.
//
// A result that is already available when ctx is done is still delivered
// and recorded. Otherwise, when ctx is done first or the channel of fn
// closes without a value, no sample is recorded and the returned channel is
// closed empty.
func Async[A, R any](p *Profiler, fn func(context.Context, A) <-chan R) func(context.Context, A) <-chan R {
	p.bind(fn)

	return func(ctx context.Context, a A) <-chan R {
		sw := p.stopwatch()
		sw.Start()

		src := fn(ctx, a)
		out := make(chan R, 1)

		deliver := func(r R) {
			sw.Stop()
			p.record(sw.Elapsed())

			out <- r
		}

		go func() {
			defer close(out)

			select {
			case <-ctx.Done():
				select {
				case r, ok := <-src:
					if ok {
						deliver(r)
					}
				default:
				}

			case r, ok := <-src:
				if ok {
					deliver(r)
				}
			}
		}()

		return out
	}
}

// Stream wraps fn, which produces values on the returned channel until it
// is closed. Values pass through unchanged. One sample covers the time from
// the call until the channel of fn closes.
//
// When ctx is done first, no sample is recorded and the returned channel is
// closed.
func Stream[A, V any](p *Profiler, fn func(context.Context, A) <-chan V) func(context.Context, A) <-chan V {
	p.bind(fn)

	return func(ctx context.Context, a A) <-chan V {
		sw := p.stopwatch()
		sw.Start()

		src := fn(ctx, a)
		out := make(chan V)

		go func() {
			defer close(out)

			for {
				select {
				case <-ctx.Done():
					return

				case v, ok := <-src:
					if !ok {
						sw.Stop()
						p.record(sw.Elapsed())

						return
					}

					select {
					case out <- v:
					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return out
	}
}
