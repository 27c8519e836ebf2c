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

package divider

import "github.com/reactivesynth/clockdivider/curated"

// InvalidQuantum is returned by Instantiate() when the quantum size is not
// positive.
const InvalidQuantum = "divider: invalid quantum size (%d)"

// Module is the compute module bound by the host at startup. The block
// processor produces silence until a Module has been bound and a Divider
// instantiated from it.
type Module interface {
	Instantiate(quantum int) (*Divider, error)
}

// Native is the in-process implementation of Module.
type Native struct{}

// Instantiate implements the Module interface.
func (Native) Instantiate(quantum int) (*Divider, error) {
	if quantum <= 0 {
		return nil, curated.Errorf(InvalidQuantum, quantum)
	}
	return NewDivider(), nil
}

// ModuleFunc allows an ordinary function to be used as a Module.
type ModuleFunc func(quantum int) (*Divider, error)

// Instantiate implements the Module interface.
func (f ModuleFunc) Instantiate(quantum int) (*Divider, error) {
	return f(quantum)
}
