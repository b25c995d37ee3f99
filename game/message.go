package game

// Command verbs exchanged with the host. Inbound: j joins a new board, u
// applies a bulk board update. Outbound: c reports one player cell change.
const (
	VerbJoin       = "j"
	VerbUpdate     = "u"
	VerbCellChange = "c"
)

// SplitMarker separates fields inside message data, matching the host-side
// protocol.
const SplitMarker = "SPLIT"

// Message is one outbound bridge-to-host message. The host polls these and
// relays them to its transport.
type Message struct {
	Verb string
	Data string
}
