// Package registry keeps a process-scoped, in-memory directory of known
// device handles, grouped by framework and queryable by tag. It never
// persists anything to disk — the backend facade uses it purely to
// enumerate and look up devices it has already discovered.
//
// Grounded on aistore's use of github.com/tidwall/buntdb for in-memory,
// queryable bookkeeping; this package opens a single ":memory:" database
// per Registry rather than the durable store aistore configures.
package registry

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/buntdb"
)

// Record is a JSON-encoded description of a device handle: enough to
// enumerate and tag it, not enough to reconstruct it. The backend facade
// keeps the live device.Device values itself; the registry only indexes
// their identity.
type Record struct {
	Kind string            `json:"kind"`
	ID   string            `json:"id"`
	Tags map[string]string `json:"tags,omitempty"`
}

func (r Record) key() string { return r.Kind + "/" + r.ID }

// Registry wraps an in-memory buntdb database indexed by kind, so callers
// can enumerate every device of a given framework without a full scan.
type Registry struct {
	db *buntdb.DB
}

// New opens a fresh in-memory registry.
func New() (*Registry, error) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, err
	}
	if err := db.CreateIndex("kind", "*", buntdb.IndexJSON("kind")); err != nil {
		db.Close()
		return nil, err
	}
	return &Registry{db: db}, nil
}

// Close releases the underlying in-memory database.
func (r *Registry) Close() error { return r.db.Close() }

// Register upserts rec, keyed by kind+id.
func (r *Registry) Register(rec Record) error {
	b, err := jsoniter.Marshal(rec)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(rec.key(), string(b), nil)
		return err
	})
}

// ByKind returns every record registered under kind, in no particular
// order beyond what the kind index happens to yield.
func (r *Registry) ByKind(kind string) ([]Record, error) {
	var out []Record
	err := r.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendEqual("kind", `{"kind":"`+kind+`"}`, func(_, value string) bool {
			var rec Record
			if jsoniter.UnmarshalFromString(value, &rec) == nil {
				out = append(out, rec)
			}
			return true
		})
	})
	return out, err
}

// ByTag returns every record whose Tags[key] equals val, across all
// kinds. A full scan — the registry is expected to hold at most a few
// hundred entries per process.
func (r *Registry) ByTag(key, val string) ([]Record, error) {
	var out []Record
	err := r.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend("", func(_, value string) bool {
			var rec Record
			if jsoniter.UnmarshalFromString(value, &rec) == nil && rec.Tags[key] == val {
				out = append(out, rec)
			}
			return true
		})
	})
	return out, err
}
