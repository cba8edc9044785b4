package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/n-ulricksen/nes-cpu/nes"
)

// How long a start-address expression may run before it is abandoned.
const addressEvalTimeout = 100 * time.Millisecond

var ErrAddressOutOfRange = errors.New("address out of range")

// addressNames are the globals visible to a start-address expression.
var addressNames = map[string]int{
	"ram":      int(nes.RamStart),
	"ram_size": nes.RamSize,
	"rom":      int(nes.RomStart),
	"rom_size": nes.RomSize,
}

// evalAddressExpression evaluates an arithmetic expression such as
// "rom + 0x10" and checks that it names a 16-bit address.
func evalAddressExpression(expr string) (uint16, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), addressEvalTimeout)
	defer cancel()
	L.SetContext(ctx)

	for name, value := range addressNames {
		L.SetGlobal(name, lua.LNumber(value))
	}

	if err := L.DoString("return " + expr); err != nil {
		return 0, errors.Wrapf(err, "evaluating address expression %q", expr)
	}
	if L.GetTop() == 0 {
		return 0, errors.Errorf("address expression %q has no value", expr)
	}
	ret := L.Get(-1)
	L.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, errors.Errorf("address expression %q is a %s, not a number", expr, ret.Type())
	}

	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errors.Errorf("address expression %q is not an integer: %v", expr, f)
	}
	if f < 0 || f > math.MaxUint16 {
		return 0, errors.Wrap(ErrAddressOutOfRange,
			fmt.Sprintf("address %.0f (expected 0x0 <= address <= %#X)", f, math.MaxUint16))
	}

	return uint16(f), nil
}
