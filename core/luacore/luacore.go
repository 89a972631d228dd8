// Package luacore implements a core whose behavior is written in Lua.
//
// The script must define a global function eval(sig). Before every call the
// driver's inputs are stored in sig.clk, sig.rst_n and sig.instruction. The
// script drives the outputs by assigning sig.status_out, sig.illegal and,
// optionally, sig.halt. The same table is passed to every call, so outputs
// that are not assigned keep their previous value. Booleans read as 0 or 1.
//
//	local pc = 0
//	local last = 0
//	function eval(sig)
//	  if sig.clk == 1 and last == 0 and sig.rst_n == 1 then
//	    pc = pc + 1
//	    sig.status_out = pc
//	  end
//	  last = sig.clk
//	end
package luacore

import (
	"math"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/sarchlab/coretb/core"
)

const evalFunc = "eval"

// Core runs a Lua script as a core model.
type Core struct {
	state *lua.LState
	fn    lua.LValue
	sig   *lua.LTable
}

// LoadFile creates a core from a script file.
func LoadFile(path string) (*Core, error) {
	l := lua.NewState()
	if err := l.DoFile(path); err != nil {
		l.Close()
		return nil, errors.Wrapf(err, "loading core script %s", path)
	}

	return newCore(l)
}

// LoadString creates a core from script source.
func LoadString(src string) (*Core, error) {
	l := lua.NewState()
	if err := l.DoString(src); err != nil {
		l.Close()
		return nil, errors.Wrap(err, "loading core script")
	}

	return newCore(l)
}

func newCore(l *lua.LState) (*Core, error) {
	fn := l.GetGlobal(evalFunc)
	if fn.Type() != lua.LTFunction {
		l.Close()
		return nil, errors.Errorf("core script does not define %s(sig)", evalFunc)
	}

	c := &Core{
		state: l,
		fn:    fn,
		sig:   l.NewTable(),
	}

	for _, s := range core.Signals() {
		c.sig.RawSetString(string(s), lua.LNumber(0))
	}

	return c, nil
}

// SetInput drives an input port.
func (c *Core) SetInput(name core.Signal, value uint64) error {
	if err := core.CheckInput(name, value); err != nil {
		return err
	}

	c.sig.RawSetString(string(name), lua.LNumber(value))

	return nil
}

// Eval calls the script's eval function.
func (c *Core) Eval() error {
	err := c.state.CallByParam(lua.P{
		Fn:      c.fn,
		NRet:    0,
		Protect: true,
	}, c.sig)
	if err != nil {
		return errors.Wrap(err, "evaluating core script")
	}

	return nil
}

// Output reads an output port from the signal table.
func (c *Core) Output(name core.Signal) (uint64, error) {
	if core.IsInput(name) {
		return 0, core.UnknownSignal(name)
	}

	v := c.sig.RawGetString(string(name))

	switch v := v.(type) {
	case lua.LNumber:
		return numberToSignal(name, float64(v))
	case lua.LBool:
		if v {
			return 1, nil
		}

		return 0, nil
	default:
		if v == lua.LNil {
			if name == core.Status || name == core.Illegal || name == core.Halt {
				return 0, nil
			}

			return 0, core.UnknownSignal(name)
		}

		return 0, errors.Errorf("signal %s holds a %s", name, v.Type())
	}
}

func numberToSignal(name core.Signal, f float64) (uint64, error) {
	if f < 0 || f != math.Trunc(f) || f > math.MaxUint32 {
		return 0, errors.Errorf("signal %s holds %v, not a 32-bit word", name, f)
	}

	return uint64(f), nil
}

// Close releases the Lua state.
func (c *Core) Close() {
	c.state.Close()
}
