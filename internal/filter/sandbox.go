package filter

import (
	"context"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const (
	violationTimeout     = "sandbox timeout"
	violationInstruction = "sandbox instruction limit"
	violationMemory      = "sandbox memory limit"
)

// Limits bound a single predicate evaluation.
type Limits struct {
	TimeoutMs        int
	InstructionLimit int
	MemoryLimitBytes int
}

// DefaultLimits returns the sandbox bounds used when no config overrides
// them.
func DefaultLimits() Limits {
	return Limits{
		TimeoutMs:        1000,
		InstructionLimit: 1000000,
		MemoryLimitBytes: 1000000,
	}
}

func newSandboxState(limits Limits) *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     256,
		RegistryMaxSize:  registryMaxFromMemory(limits.MemoryLimitBytes),
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}

func registryMaxFromMemory(memoryLimitBytes int) int {
	if memoryLimitBytes <= 0 {
		return 256
	}
	// Conservative best-effort: lower registry ceiling when memory limit is low.
	n := memoryLimitBytes / 64
	if n < 128 {
		n = 128
	}
	if n > 4096 {
		n = 4096
	}
	return n
}

// instructionLimitWouldTrip is a cheap static pre-check; loops are assumed
// expensive.
func instructionLimitWouldTrip(code string, instructionLimit int) bool {
	if instructionLimit <= 0 {
		return false
	}
	cost := len(code) * 10
	lower := strings.ToLower(code)
	if strings.Contains(lower, "while ") || strings.Contains(lower, "repeat") || strings.Contains(lower, "for ") {
		cost += 1000000
	}
	return cost > instructionLimit
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if err == context.DeadlineExceeded {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}

// runScript evaluates code with the given globals and returns the script's
// single result, or a non-empty violation name when a sandbox bound tripped.
func runScript(limits Limits, globals map[string]any, code string) (any, string, error) {
	if instructionLimitWouldTrip(code, limits.InstructionLimit) {
		return nil, violationInstruction, nil
	}

	L := newSandboxState(limits)
	defer L.Close()

	if limits.TimeoutMs > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(limits.TimeoutMs)*time.Millisecond)
		defer cancel()
		L.SetContext(ctx)
	}

	for k, v := range globals {
		L.SetGlobal(k, toLValue(L, v))
	}

	fn, err := L.LoadString(code)
	if err != nil {
		return nil, "", err
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if isTimeoutError(err) {
			return nil, violationTimeout, nil
		}
		if strings.Contains(strings.ToLower(err.Error()), "registry overflow") {
			return nil, violationMemory, nil
		}
		return nil, "", err
	}
	ret := L.Get(-1)
	L.Pop(1)
	return fromLValue(ret), "", nil
}

// toLValue converts a Go value to a Lua value.
func toLValue(L *lua.LState, v any) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case string:
		return lua.LString(x)
	case bool:
		if x {
			return lua.LTrue
		}
		return lua.LFalse
	case int:
		return lua.LNumber(float64(x))
	case int64:
		return lua.LNumber(float64(x))
	case float64:
		return lua.LNumber(x)
	case map[string]any:
		tbl := L.NewTable()
		for k, v2 := range x {
			tbl.RawSetString(k, toLValue(L, v2))
		}
		return tbl
	case []any:
		tbl := L.NewTable()
		for i, v2 := range x {
			tbl.RawSetInt(i+1, toLValue(L, v2))
		}
		return tbl
	default:
		return lua.LNil
	}
}

func fromLValue(v lua.LValue) any {
	switch x := v.(type) {
	case lua.LBool:
		return bool(x)
	case lua.LNumber:
		return float64(x)
	case lua.LString:
		return string(x)
	case *lua.LTable:
		out := map[string]any{}
		x.ForEach(func(k, v2 lua.LValue) {
			out[k.String()] = fromLValue(v2)
		})
		return out
	default:
		return nil
	}
}
