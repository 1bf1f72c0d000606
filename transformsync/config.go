package transformsync

// AuthorityMode identifies which side of the connection is allowed to
// assert the canonical pose for an entity. Modeled as a tagged variant
// plus a per-node "am I the owner" check in Driver, not as inheritance.
type AuthorityMode int

const (
	// ServerAuthoritative means the server's pose is canonical; clients
	// interpolate what the server sends them.
	ServerAuthoritative AuthorityMode = iota
	// ClientAuthoritative means the owning client's pose is canonical;
	// the server (and every other client) interpolates it.
	ClientAuthoritative
)

func (m AuthorityMode) String() string {
	switch m {
	case ServerAuthoritative:
		return "server-authoritative"
	case ClientAuthoritative:
		return "client-authoritative"
	default:
		return "unknown"
	}
}

// ChannelID selects the delivery guarantee the transport should use for a
// given entity's snapshots. The engine itself never inspects delivery
// guarantees; this is purely a routing hint handed to the transport
// adapter.
type ChannelID int

const (
	Reliable ChannelID = iota
	Unreliable
)

func (c ChannelID) String() string {
	switch c {
	case Reliable:
		return "reliable"
	case Unreliable:
		return "unreliable"
	default:
		return "unknown"
	}
}

// Config is the per-entity configuration surface.
type Config struct {
	// ClientAuthority selects ClientAuthoritative when true,
	// ServerAuthoritative otherwise.
	ClientAuthority bool
	// Channel is the delivery-guarantee hint passed to the transport.
	Channel ChannelID
	// SendInterval is the minimum number of seconds between two outbound
	// snapshots for this entity, in [0, 1].
	SendInterval float32
	// BufferTimeMultiplier scales SendInterval into the playback delay
	// (BufferTime). Must be >= 1.
	BufferTimeMultiplier uint32
}

// Authority resolves the tagged AuthorityMode from ClientAuthority.
func (c Config) Authority() AuthorityMode {
	if c.ClientAuthority {
		return ClientAuthoritative
	}
	return ServerAuthoritative
}

// BufferTime is the deliberate playback delay that lets several
// snapshots accumulate before the interpolation kernel starts consuming
// them, trading latency for smoothness under loss.
func (c Config) BufferTime() float64 {
	return float64(c.SendInterval) * float64(c.BufferTimeMultiplier)
}
