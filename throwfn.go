package throwfn

import "github.com/throwfn/throwfn/wrapped"

// ErrNilFunction is raised (as a panic) by factories and combinators
// that receive a nil function argument. The panic happens at
// composition time, before any callable is invoked.
const ErrNilFunction wrapped.Constant = "function is nil"

func expect(ok bool) {
	if !ok {
		panic(ErrNilFunction)
	}
}
