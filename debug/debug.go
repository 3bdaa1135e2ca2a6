package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Query bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JX_DEBUG_PARSE")
	d.Query = boolEnv("JX_DEBUG_QUERY")
	d.Patch = boolEnv("JX_DEBUG_PATCH")
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
func Query() bool {
	return d.Query
}
func Patch() bool {
	return d.Patch
}
