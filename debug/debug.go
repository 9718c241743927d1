// Package debug provides environment-gated tracing for the parse,
// modify and diff stages.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Extract bool
	Parse   bool
	Modify  bool
	Diff    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Extract = boolEnv("MDSYNC_DEBUG_EXTRACT")
	d.Parse = boolEnv("MDSYNC_DEBUG_PARSE")
	d.Modify = boolEnv("MDSYNC_DEBUG_MODIFY")
	d.Diff = boolEnv("MDSYNC_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Extract() bool {
	return d.Extract
}
func Parse() bool {
	return d.Parse
}
func Modify() bool {
	return d.Modify
}
func Diff() bool {
	return d.Diff
}
