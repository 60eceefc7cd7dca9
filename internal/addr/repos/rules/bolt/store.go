// Package bolt persists a compiled public suffix ruleset in a bbolt
// database, indexed by anchor label. Snapshots are replaced whole in
// a single transaction so readers never observe a partial ruleset.
package bolt

import (
	"encoding/binary"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/haukened/namevet/internal/addr/domain"
	"github.com/haukened/namevet/internal/addr/repos/rules"
)

var (
	bucketRules = []byte("rules")
	bucketMeta  = []byte("meta")
)

var (
	metaVersion = []byte("version")
	metaUpdated = []byte("updated")
	metaRules   = []byte("rules")
)

// boltStore implements rules.Store using bbolt.
type boltStore struct {
	db *bbolt.DB
}

// New opens (or creates) a Bolt database at path and ensures buckets
// exist.
func New(path string) (rules.Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRules); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketMeta); err != nil {
			return err
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Close() error { return s.db.Close() }

// RulesFor returns the rules anchored at the given label, or nil when
// the anchor has no explicit rules.
func (s *boltStore) RulesFor(anchor string) ([]domain.Rule, error) {
	var rs []domain.Rule
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRules)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(anchor))
		if v == nil {
			return nil
		}
		decoded, err := decodeRules(v)
		if err != nil {
			return err
		}
		rs = decoded
		return nil
	})
	return rs, err
}

// RebuildAll replaces the whole ruleset snapshot in one transaction.
func (s *boltStore) RebuildAll(ruleset []domain.Rule, version uint64, updatedUnix int64) error {
	byAnchor := make(map[string][]domain.Rule)
	for _, r := range ruleset {
		byAnchor[r.Anchor()] = append(byAnchor[r.Anchor()], r)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketRules) != nil {
			if err := tx.DeleteBucket(bucketRules); err != nil {
				return err
			}
		}
		b, err := tx.CreateBucket(bucketRules)
		if err != nil {
			return err
		}
		for anchor, rs := range byAnchor {
			v, err := encodeRules(rs)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(anchor), v); err != nil {
				return err
			}
		}
		meta := tx.Bucket(bucketMeta)
		if err := putUint64(meta, metaVersion, version); err != nil {
			return err
		}
		if err := putUint64(meta, metaUpdated, uint64(updatedUnix)); err != nil {
			return err
		}
		return putUint64(meta, metaRules, uint64(len(ruleset)))
	})
}

// Stats reads counts and metadata in a read-only transaction.
func (s *boltStore) Stats() rules.StoreStats {
	st := rules.StoreStats{}
	_ = s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketRules); b != nil {
			st.Anchors = uint64(b.Stats().KeyN)
		}
		if b := tx.Bucket(bucketMeta); b != nil {
			if v := b.Get(metaVersion); len(v) == 8 {
				st.Version = binary.BigEndian.Uint64(v)
			}
			if v := b.Get(metaUpdated); len(v) == 8 {
				st.UpdatedUnix = int64(binary.BigEndian.Uint64(v))
			}
			if v := b.Get(metaRules); len(v) == 8 {
				st.Rules = binary.BigEndian.Uint64(v)
			}
		}
		return nil
	})
	return st
}

func putUint64(b *bbolt.Bucket, key []byte, v uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return b.Put(key, buf)
}

var _ rules.Store = (*boltStore)(nil)
