package backend

// Type selects which Store implementation backs the ledger.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	}
	return false
}

// Config carries everything the factory needs to wire a backend.
type Config struct {
	Type   Type
	DBPath string
}
