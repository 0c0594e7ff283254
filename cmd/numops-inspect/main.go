// Package main provides a small diagnostic CLI that prints the numeric kind
// table and the state of the default operations registry after the standard
// provider chain resolved a representative set of types. Useful when
// debugging why a type does or does not pick up an implementation.
package main

import (
	"fmt"
	"math/big"
	"os"
	"reflect"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/govalues/decimal"

	"numops/nullable"
	_ "numops/ops" // wires the standard provider chain
	"numops/primitive"
	"numops/registry"
)

func main() {
	fmt.Println("numeric kinds:")

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		line := fmt.Sprintf("  %-12s categories=%07b", k, k.Categories())
		if k.IsInteger() || k.IsFloat() {
			line += fmt.Sprintf(" bits=%d", k.Bits())
		}

		fmt.Println(line)
	}

	// touch one type per family so the registry has something to show
	samples := []reflect.Type{
		registry.TypeFor[int](),
		registry.TypeFor[uint8](),
		registry.TypeFor[float64](),
		registry.TypeFor[*big.Int](),
		registry.TypeFor[decimal.Decimal](),
		registry.TypeFor[nullable.Nullable[int64]](),
	}

	for _, typ := range samples {
		if _, err := registry.Resolve(typ); err != nil {
			fmt.Fprintln(os.Stderr, "resolve:", err)
			os.Exit(1)
		}
	}

	entries := registry.Default.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Type.String() < entries[j].Type.String()
	})

	fmt.Printf("\nregistry entries (%d resolved):\n", len(entries))

	for _, e := range entries {
		line := fmt.Sprintf("  %-28s %T", e.Type, e.Operations)

		minVal, errMin := e.Operations.MinValue()
		maxVal, errMax := e.Operations.MaxValue()
		if errMin == nil && errMax == nil {
			line += fmt.Sprintf(" range=[%v, %v]", minVal, maxVal)
		}

		fmt.Println(line)
	}

	if len(os.Args) > 1 && os.Args[1] == "-v" {
		spew.Fdump(os.Stderr, entries)
	}
}
