package level

import (
	_ "embed"
	"sync"
)

//go:embed builtin.lvl
var builtinSource string

var builtin = sync.OnceValue(func() *Set {
	set, err := ParseString("builtin.lvl", builtinSource)
	if err != nil {
		panic(err)
	}
	return set
})

// Builtin returns the levels compiled into the binary.
func Builtin() *Set { return builtin() }
