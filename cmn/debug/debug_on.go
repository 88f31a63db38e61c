//go:build debug

package debug

import "fmt"

const enabled = true

func assert(cond bool, args ...any) {
	if cond {
		return
	}
	msg := "assertion failed"
	if len(args) > 0 {
		msg = fmt.Sprint(args...)
	}
	panic(msg)
}
