// This file is part of ClockDivider.
//
// ClockDivider is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ClockDivider is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ClockDivider.  If not, see <https://www.gnu.org/licenses/>.

package automation

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/reactivesynth/clockdivider/curated"
)

// Sentinel error patterns used by the Lua source.
const (
	LuaScript   = "automation: lua: %v"
	LuaFunction = "automation: lua: %s is not a function"
)

// Lua is a Source that calls a function in a Lua script for every sample.
// The function receives the absolute sample position and returns a number or
// a boolean. The global "samplerate" is available to the script.
//
//	function clock(sample)
//		return sample % 4800 == 0
//	end
//
// The Lua interpreter allocates memory and so the Lua source should not be
// used where the block processor is driven from a real-time audio thread.
type Lua struct {
	state *lua.LState
	fn    lua.LValue

	// the first error encountered by Fill(). once set the source produces
	// zeroes
	err error
}

// NewLua is the preferred method of initialisation for the Lua type. The
// script is run once and must define a global function with the given name.
func NewLua(script string, function string, sampleRate int) (*Lua, error) {
	L := lua.NewState()
	L.SetGlobal("samplerate", lua.LNumber(sampleRate))

	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, curated.Errorf(LuaScript, err)
	}

	fn := L.GetGlobal(function)
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, curated.Errorf(LuaFunction, function)
	}

	return &Lua{
		state: L,
		fn:    fn,
	}, nil
}

// Fill implements the Source interface.
func (l *Lua) Fill(position int64, buf []float32) []float32 {
	for i := range buf {
		buf[i] = 0
		if l.err != nil {
			continue
		}

		err := l.state.CallByParam(lua.P{
			Fn:      l.fn,
			NRet:    1,
			Protect: true,
		}, lua.LNumber(position+int64(i)))
		if err != nil {
			l.err = curated.Errorf(LuaScript, err)
			continue
		}

		ret := l.state.Get(-1)
		l.state.Pop(1)

		switch ret.Type() {
		case lua.LTBool:
			if lua.LVAsBool(ret) {
				buf[i] = 1
			}
		default:
			buf[i] = float32(lua.LVAsNumber(ret))
		}
	}
	return buf
}

// Err returns the first error encountered by the script.
func (l *Lua) Err() error {
	return l.err
}

// Close the Lua interpreter.
func (l *Lua) Close() {
	l.state.Close()
}
