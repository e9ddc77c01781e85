package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/gridroute/grid"
)

// ErrNoGrid is returned when the store holds no grid yet.
var ErrNoGrid = errors.New("store: no grid initialized")

var (
	metaKey        = []byte("grid/meta")
	obstaclePrefix = []byte("grid/obstacle/")
)

// Config configures Open.
type Config struct {
	// Path is the badger directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in memory. Used by tests.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool

	// GCInterval runs value-log GC periodically; 0 disables it.
	GCInterval time.Duration

	// Logger receives badger's internal logs. nil silences them.
	Logger *slog.Logger
}

// DefaultConfig returns a durable on-disk configuration rooted at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true, GCInterval: 5 * time.Minute}
}

// InMemoryConfig returns a configuration with no disk persistence.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

type meta struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Store is a badger-backed grid repository. Safe for concurrent use.
type Store struct {
	db *badger.DB
	gc *gcRunner
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open opens (creating if needed) the store described by cfg.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store: path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	s := &Store{db: db}
	if cfg.GCInterval > 0 && !cfg.InMemory {
		s.gc = startGC(db, cfg.GCInterval, cfg.Logger)
	}

	return s, nil
}

// OpenInMemory opens an empty in-memory store.
func OpenInMemory() (*Store, error) {
	return Open(InMemoryConfig())
}

// Close stops background GC and closes the database.
func (s *Store) Close() error {
	if s.gc != nil {
		s.gc.stop()
	}

	return s.db.Close()
}

// Init replaces any stored grid with a blank rows×cols grid.
func (s *Store) Init(rows, cols int) error {
	g, err := grid.New(rows, cols)
	if err != nil {
		return err
	}

	return s.SaveGrid(g)
}

// SaveGrid replaces the stored grid with g's dimensions and obstacles.
func (s *Store) SaveGrid(g *grid.Grid) error {
	m, err := json.Marshal(meta{Rows: g.Rows(), Cols: g.Cols()})
	if err != nil {
		return fmt.Errorf("store: encode meta: %w", err)
	}
	obstacles := g.Obstacles()

	return s.db.Update(func(txn *badger.Txn) error {
		if err := deletePrefix(txn, obstaclePrefix); err != nil {
			return err
		}
		if err := txn.Set(metaKey, m); err != nil {
			return err
		}
		for _, id := range obstacles {
			if err := txn.Set(obstacleKey(id), nil); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadGrid rebuilds the stored grid. ErrNoGrid when none was saved.
func (s *Store) LoadGrid() (*grid.Grid, error) {
	var (
		m   meta
		ids []grid.CellID
	)
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		if m, err = readMeta(txn); err != nil {
			return err
		}
		ids, err = scanObstacles(txn)
		return err
	})
	if err != nil {
		return nil, err
	}

	g, err := grid.New(m.Rows, m.Cols)
	if err != nil {
		return nil, fmt.Errorf("store: stored meta: %w", err)
	}
	if err := g.SetObstacles(ids, true); err != nil {
		return nil, fmt.Errorf("store: stored obstacles: %w", err)
	}

	return g, nil
}

// Dimensions returns the stored rows and cols.
func (s *Store) Dimensions() (rows, cols int, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		m, err := readMeta(txn)
		rows, cols = m.Rows, m.Cols
		return err
	})

	return rows, cols, err
}

// SetObstacles marks (blocked=true) or clears ids in one transaction.
// Any id outside the stored grid fails the whole batch with grid.ErrCellOutOfRange.
func (s *Store) SetObstacles(ids []grid.CellID, blocked bool) error {
	return s.db.Update(func(txn *badger.Txn) error {
		m, err := readMeta(txn)
		if err != nil {
			return err
		}
		size := m.Rows * m.Cols
		for _, id := range ids {
			if id < 1 || int(id) > size {
				return fmt.Errorf("%w: %d not in [1,%d]", grid.ErrCellOutOfRange, id, size)
			}
		}
		for _, id := range ids {
			if blocked {
				err = txn.Set(obstacleKey(id), nil)
			} else {
				err = txn.Delete(obstacleKey(id))
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Obstacles returns the stored obstacle ids in ascending order.
func (s *Store) Obstacles() ([]grid.CellID, error) {
	var ids []grid.CellID
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		ids, err = scanObstacles(txn)
		return err
	})

	return ids, err
}

func readMeta(txn *badger.Txn) (meta, error) {
	var m meta
	item, err := txn.Get(metaKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return m, ErrNoGrid
	}
	if err != nil {
		return m, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &m)
	})
	if err != nil {
		return m, fmt.Errorf("store: decode meta: %w", err)
	}

	return m, nil
}

// scanObstacles walks the obstacle prefix; big-endian ids iterate in ascending order.
func scanObstacles(txn *badger.Txn) ([]grid.CellID, error) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = obstaclePrefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var ids []grid.CellID
	for it.Rewind(); it.Valid(); it.Next() {
		k := it.Item().Key()
		if len(k) != len(obstaclePrefix)+8 {
			return nil, fmt.Errorf("store: malformed obstacle key %q", k)
		}
		ids = append(ids, grid.CellID(binary.BigEndian.Uint64(k[len(obstaclePrefix):])))
	}

	return ids, nil
}

func deletePrefix(txn *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix
	it := txn.NewIterator(opts)

	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, k := range keys {
		if err := txn.Delete(k); err != nil {
			return err
		}
	}

	return nil
}

func obstacleKey(id grid.CellID) []byte {
	k := make([]byte, len(obstaclePrefix)+8)
	copy(k, obstaclePrefix)
	binary.BigEndian.PutUint64(k[len(obstaclePrefix):], uint64(id))

	return k
}
