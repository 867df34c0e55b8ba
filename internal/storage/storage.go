// Package storage provides the key-value gateway the tracker persists
// through. Values are JSON-serialized text; the gateway itself is
// encoding-agnostic.
package storage

// Keys of the persisted records.
const (
	KeyUsers       = "users"
	KeyProjects    = "projects"
	KeyCurrentUser = "current_user"
)

// Gateway is a synchronous local key-value store. Read reports absence via
// ok=false rather than an error; Remove of a missing key is a no-op.
type Gateway interface {
	Read(key string) (value string, ok bool, err error)
	Write(key, value string) error
	Remove(key string) error
}

// NoopGateway is the gateway used when no persistent storage environment is
// available. Reads report absent, writes and removes are discarded.
type NoopGateway struct{}

// NewNoopGateway returns a gateway that persists nothing.
func NewNoopGateway() *NoopGateway {
	return &NoopGateway{}
}

func (*NoopGateway) Read(string) (string, bool, error) { return "", false, nil }

func (*NoopGateway) Write(string, string) error { return nil }

func (*NoopGateway) Remove(string) error { return nil }
