package lower

import (
	"maps"
	"slices"
	"strings"

	"github.com/sirkon/jslower/internal/config"
)

const builtinPackage = "builtin"

// knownCallees keeps Go functions having a dedicated JS rendering.
type knownCallees struct {
	known map[config.Reference]config.Callee
}

func newKnownCallees(custom map[config.Reference]config.Callee) *knownCallees {
	consoleLog := config.Callee{Kind: config.CalleeKindCall, Target: "console.log"}
	throwError := config.Callee{Kind: config.CalleeKindThrow, Target: "Error"}

	known := map[config.Reference]config.Callee{
		// Output.
		{Package: builtinPackage, Name: "print"}:   consoleLog,
		{Package: builtinPackage, Name: "println"}: consoleLog,
		{Package: "fmt", Name: "Print"}:            consoleLog,
		{Package: "fmt", Name: "Printf"}:           consoleLog,
		{Package: "fmt", Name: "Println"}:          consoleLog,
		{Package: "log", Name: "Print"}:            consoleLog,
		{Package: "log", Name: "Printf"}:           consoleLog,
		{Package: "log", Name: "Println"}:          consoleLog,

		// Builtins with JS counterparts.
		{Package: builtinPackage, Name: "len"}:    {Kind: config.CalleeKindLength},
		{Package: builtinPackage, Name: "append"}: {Kind: config.CalleeKindConcat},

		// Execution abandoning.
		{Package: builtinPackage, Name: "panic"}: {Kind: config.CalleeKindThrow},
		{Package: "os", Name: "Exit"}:            throwError,
		{Package: "log", Name: "Fatal"}:          throwError,
		{Package: "log", Name: "Fatalf"}:         throwError,
		{Package: "log", Name: "Fatalln"}:        throwError,
		{Package: "log", Name: "Panic"}:          throwError,
		{Package: "log", Name: "Panicf"}:         throwError,
		{Package: "log", Name: "Panicln"}:        throwError,
	}

	// Custom definitions take precedence.
	maps.Insert(known, maps.All(custom))

	return &knownCallees{known: known}
}

func (k *knownCallees) lookup(ref config.Reference) (config.Callee, bool) {
	c, ok := k.known[ref]
	return c, ok
}

// externals returns JS globals the lowered code may reference.
func (k *knownCallees) externals() []string {
	set := map[string]struct{}{
		"Math":      {},
		"undefined": {},
	}
	for _, c := range k.known {
		if c.Target == "" {
			continue
		}
		root, _, _ := strings.Cut(c.Target, ".")
		set[root] = struct{}{}
	}

	return slices.Sorted(maps.Keys(set))
}
