package sonapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v2"
	"go.uber.org/zap"
)

type CachedConfig struct {
	// Path of badger directory, ignored when InMemory is set
	Path     string
	InMemory bool
	TTL      time.Duration
}

// Enabled reports whether the configuration asks for a cache at all.
func (c *CachedConfig) Enabled() bool {
	return c != nil && (c.Path != "" || c.InMemory)
}

// Cached is a read-through cache in front of another Lookuper.
// Only successful results are stored.
type Cached struct {
	lookuper Lookuper
	storage  *Storage
	logger   *zap.Logger
}

// NewCached opens badger according to conf and wraps lookuper.
func NewCached(lookuper Lookuper, conf *CachedConfig, logger *zap.Logger) (*Cached, error) {
	opts := badger.DefaultOptions(conf.Path).WithLogger(nil)
	if conf.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("can not open cache storage: %w", err)
	}
	return NewCachedDB(lookuper, db, conf.TTL, logger), nil
}

func NewCachedDB(lookuper Lookuper, db *badger.DB, ttl time.Duration, logger *zap.Logger) *Cached {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cached{
		lookuper: lookuper,
		storage:  &Storage{DB: db, TTL: ttl},
		logger:   logger,
	}
}

func (c *Cached) Lookup(ctx context.Context, word string, isEnglish bool) (*Result, error) {
	cached, err := c.storage.GetResult(word, isEnglish)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return nil, err
	}
	result, err := c.lookuper.Lookup(ctx, word, isEnglish)
	if err != nil {
		return nil, err
	}
	if err := c.storage.PutResult(word, isEnglish, result); err != nil {
		c.logger.Warn("Can not cache lookup result",
			zap.Error(err),
			zap.String("word", word),
			zap.Bool("is_english", isEnglish),
		)
	}
	return result, nil
}

func (c *Cached) Close(ctx context.Context) error {
	var errs []error
	if closeErr := c.lookuper.Close(ctx); closeErr != nil {
		errs = append(errs, fmt.Errorf("lookuper close failed: %w", closeErr))
	}
	if closeErr := c.storage.Close(); closeErr != nil {
		errs = append(errs, fmt.Errorf("storage close failed: %w", closeErr))
	}
	if len(errs) != 0 {
		var strErrs []string
		for _, e := range errs {
			strErrs = append(strErrs, e.Error())
		}
		summary := strings.Join(strErrs, " AND ")
		return fmt.Errorf("while closing next errors happened: %s", summary)
	}
	return nil
}
