// Package debug gates diagnostic logging behind environment variables so
// the inspector stays silent by default.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Render bool
	State  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("KDLVIEW_DEBUG_PARSE")
	d.Render = boolEnv("KDLVIEW_DEBUG_RENDER")
	d.State = boolEnv("KDLVIEW_DEBUG_STATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Render() bool {
	return d.Render
}
func State() bool {
	return d.State
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
