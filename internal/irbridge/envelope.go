// Package irbridge carries decoded commands from pkg/irdecode out to the
// rest of the host product: MQTT, a websocket dashboard, a Redis repeat
// cache, a SQLite history table, and periodic InfluxDB stats - grounded on
// the teacher's pkg/nodes/network/mqtt_out.go, internal/websocket/hub.go,
// internal/storage/{redis_context,sqlite}.go and internal/engine/scheduler.go.
package irbridge

import (
	"time"

	"github.com/google/uuid"

	"github.com/edgeflow/irdecode/pkg/irdecode"
)

// Envelope is the transport-facing representation of a decoded command,
// the irdecode-scoped analogue of the teacher's EnhancedMessage: every
// published/broadcast command carries a UUID the same way.
type Envelope struct {
	ID        string    `json:"id"`
	Pin       int       `json:"pin"`
	Protocol  string     `json:"protocol"`
	Address   uint32    `json:"address"`
	Command   uint32    `json:"command"`
	Repeat    bool      `json:"repeat"`
	Timestamp time.Time `json:"timestamp"`
}

// FromCmdUnion flattens one of pkg/irdecode's tagged-union decode results
// into a transport Envelope. ok is false for a zero-value/CmdNone union,
// which a slot never actually returns but which callers may still pass
// through generic code paths.
func FromCmdUnion(pin int, u irdecode.CmdUnion, now time.Time) (Envelope, bool) {
	env := Envelope{ID: uuid.NewString(), Pin: pin, Timestamp: now}

	switch u.Kind {
	case irdecode.CmdNec:
		env.Protocol = "nec"
		env.Address, env.Command, env.Repeat = uint32(u.Nec.Address), uint32(u.Nec.Command), u.Nec.Repeat
	case irdecode.CmdNec16:
		env.Protocol = "nec16"
		env.Address, env.Command, env.Repeat = uint32(u.Nec16.Address), uint32(u.Nec16.Command), u.Nec16.Repeat
	case irdecode.CmdNecSamsung:
		env.Protocol = "nec_samsung"
		env.Address, env.Command, env.Repeat = uint32(u.NecSamsung.Address), uint32(u.NecSamsung.Command), u.NecSamsung.Repeat
	case irdecode.CmdNecApple:
		env.Protocol = "nec_apple"
		env.Address = uint32(u.NecApple.DeviceID)<<8 | uint32(u.NecApple.Address)
		env.Command, env.Repeat = uint32(u.NecApple.Command), u.NecApple.Repeat
	case irdecode.CmdRc5:
		env.Protocol = "rc5"
		env.Address, env.Command = uint32(u.Rc5.Address), uint32(u.Rc5.Command)
	case irdecode.CmdRc6:
		env.Protocol = "rc6"
		env.Address = uint32(u.Rc6.Mode)<<8 | uint32(u.Rc6.Address)
		env.Command = uint32(u.Rc6.Command)
	case irdecode.CmdDenon:
		env.Protocol = "denon"
		env.Address, env.Command = uint32(u.Denon.Address), uint32(u.Denon.Command)
	case irdecode.CmdSbp:
		env.Protocol = "sbp"
		env.Address, env.Command, env.Repeat = uint32(u.Sbp.Address), uint32(u.Sbp.Command), u.Sbp.Repeat
	default:
		return Envelope{}, false
	}

	return env, true
}
