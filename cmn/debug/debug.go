// Package debug provides assertions that compile to no-ops unless built
// with the "debug" build tag. Panics raised here are reserved for internal
// invariant violations, never for foreseeable runtime conditions.
package debug

// Assert panics with args if cond is false. Only active when built with
// "-tags debug".
func Assert(cond bool, args ...any) { assert(cond, args...) }

// AssertNoErr panics if err is non-nil. Only active when built with
// "-tags debug".
func AssertNoErr(err error) {
	if err != nil {
		assert(false, err.Error())
	}
}

// Enabled reports whether debug assertions are compiled in.
func Enabled() bool { return enabled }
