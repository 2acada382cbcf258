// Package results keeps the outcome of simulation runs in a LevelDB
// database so runs of different policies and frame counts can be compared.
package results

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sibexico/memsim/mmu"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
	"golang.org/x/crypto/sha3"
)

const runPrefix = "run/"

// ErrNotFound is returned when no report is stored under a key
var ErrNotFound = errors.New("report not found")

// Report is the outcome of one simulation run
type Report struct {
	Trace       string         `json:"trace"`
	Fingerprint string         `json:"fingerprint"`
	Policy      string         `json:"policy"`
	Frames      int            `json:"frames"`
	Seed        int64          `json:"seed"`
	PageSize    uint64         `json:"page_size"`
	Stats       mmu.Statistics `json:"stats"`
	RecordedAt  time.Time      `json:"recorded_at"`
}

// Key identifies a run. Reruns of the same trace, policy and frame count
// share a key, so the latest one wins. Frames are zero padded so runs of one
// policy list in frame order.
func (r Report) Key() []byte {
	return []byte(fmt.Sprintf("%s%s/%08d/%s", runPrefix, r.Policy, r.Frames, r.Fingerprint))
}

// Fingerprint derives a stable identifier for a trace from its path and size
func Fingerprint(path string, size int64) string {
	h := sha3.New256()
	fmt.Fprintf(h, "%s\x00%d", path, size)
	return hex.EncodeToString(h.Sum(nil)[:12])
}

// Store persists reports
type Store struct {
	db *leveldb.DB
}

// Open opens or creates a store in dir
func Open(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open results database %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory creates a store that lives only as long as the process
func OpenInMemory() (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Put stores a report, replacing any earlier run with the same key
func (s *Store) Put(r Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return s.db.Put(r.Key(), data, nil)
}

// Get loads the report stored under key
func (s *Store) Get(key []byte) (Report, error) {
	data, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return Report{}, ErrNotFound
	}
	if err != nil {
		return Report{}, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("failed to decode report %s: %w", key, err)
	}
	return r, nil
}

// List returns every stored report ordered by policy, then frame count
func (s *Store) List() ([]Report, error) {
	return s.list(util.BytesPrefix([]byte(runPrefix)))
}

// ListPolicy returns the stored reports of one policy ordered by frame count
func (s *Store) ListPolicy(policy string) ([]Report, error) {
	return s.list(util.BytesPrefix([]byte(runPrefix + policy + "/")))
}

func (s *Store) list(r *util.Range) ([]Report, error) {
	iter := s.db.NewIterator(r, nil)
	defer iter.Release()

	var reports []Report
	for iter.Next() {
		var report Report
		if err := json.Unmarshal(iter.Value(), &report); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", iter.Key(), err)
		}
		reports = append(reports, report)
	}
	return reports, iter.Error()
}

// Delete removes the report stored under key
func (s *Store) Delete(key []byte) error {
	return s.db.Delete(key, nil)
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
