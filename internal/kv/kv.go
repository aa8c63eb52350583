package kv

// Namespace keys for the persisted snapshots. Each namespace is read once
// at startup and rewritten in full after every mutation of its collection.
const (
	ProductsKey = "marketmind-products"
	BillsKey    = "marketmind-bills"
	UserKey     = "marketmind-user"
)

// Store is the persistence collaborator: any key-value store with string
// values suffices. A missing key is reported via the bool, not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
