package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Query  bool
	Patch  bool
	Match  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YAMLET_DEBUG_PARSE")
	d.Encode = boolEnv("YAMLET_DEBUG_ENCODE")
	d.Query = boolEnv("YAMLET_DEBUG_QUERY")
	d.Patch = boolEnv("YAMLET_DEBUG_PATCH")
	d.Match = boolEnv("YAMLET_DEBUG_MATCH")
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
func Encode() bool {
	return d.Encode
}
func Query() bool {
	return d.Query
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
