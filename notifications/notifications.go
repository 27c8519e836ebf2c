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

package notifications

import "fmt"

// Kind of event described by a Notice. The string values are the message
// types seen by consumers of the control plane.
type Kind string

// List of defined notice kinds.
const (
	// the stored previous value of the clock or reset gate has changed
	ClockTriggerChange Kind = "clock-trigger-change"
	ResetTriggerChange Kind = "reset-trigger-change"

	// the compute module has been bound and the processor is producing output
	ModuleReady Kind = "module-ready"

	// the compute module could not be bound. this is reported once and the
	// bind is not retried
	BindFailed Kind = "bind-failed"
)

// Notice describes a single event. Notice is a value type and can be copied
// without allocation.
type Notice struct {
	Kind Kind

	// the new gate value for the trigger change kinds
	Value bool

	// sample position at which the event occurred, counted from the first
	// sample processed
	Sample int64
}

func (n Notice) String() string {
	switch n.Kind {
	case ClockTriggerChange, ResetTriggerChange:
		return fmt.Sprintf("%s %v @ %d", n.Kind, n.Value, n.Sample)
	}
	return string(n.Kind)
}

// Notify is implemented by types that want to receive notices.
type Notify interface {
	Notify(notice Notice) error
}
