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

package control

import (
	"fmt"

	"github.com/reactivesynth/clockdivider/divider"
	"github.com/reactivesynth/clockdivider/notifications"
)

// MessageType identifies the meaning of a Message.
type MessageType string

// Messages sent from the host to the core.
const (
	ManualClockTrigger MessageType = "manual-clock-trigger"
	ManualResetTrigger MessageType = "manual-reset-trigger"
	Bind               MessageType = "bind"
)

// Messages sent from the core to the host.
const (
	ModuleReady        = MessageType(notifications.ModuleReady)
	BindFailed         = MessageType(notifications.BindFailed)
	ClockTriggerChange = MessageType(notifications.ClockTriggerChange)
	ResetTriggerChange = MessageType(notifications.ResetTriggerChange)
)

// Message is the unit of communication in both directions.
type Message struct {
	Type MessageType

	// the latch value for ManualClockTrigger and ManualResetTrigger. the new
	// gate value for ClockTriggerChange and ResetTriggerChange
	Value bool

	// compute module to bind. Bind only
	Module divider.Module

	// reason for failure. BindFailed only
	Err error

	// absolute sample position of the event. outbound messages only
	Sample int64
}

func (m Message) String() string {
	switch m.Type {
	case ManualClockTrigger, ManualResetTrigger:
		return fmt.Sprintf("%s %v", m.Type, m.Value)
	case ClockTriggerChange, ResetTriggerChange:
		return fmt.Sprintf("%s %v @ %d", m.Type, m.Value, m.Sample)
	case BindFailed:
		return fmt.Sprintf("%s: %v", m.Type, m.Err)
	}
	return string(m.Type)
}

// messageFromNotice converts a notice from the block processor into an
// outbound message.
func messageFromNotice(n notifications.Notice) Message {
	return Message{
		Type:   MessageType(n.Kind),
		Value:  n.Value,
		Sample: n.Sample,
	}
}
