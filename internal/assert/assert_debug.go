// +build debug

package assert

import "fmt"

// DEBUG is true in builds tagged "debug".
const DEBUG = true

// Assert panics with the formatted message if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
