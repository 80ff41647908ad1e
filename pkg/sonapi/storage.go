package sonapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v2"
)

type keyType byte

const (
	estonianKey keyType = iota + 1
	englishKey
)

func lookupKeyType(isEnglish bool) keyType {
	if isEnglish {
		return englishKey
	}
	return estonianKey
}

// Storage keeps lookup results in badger. A missing entry is reported as
// badger.ErrKeyNotFound.
type Storage struct {
	DB *badger.DB
	// TTL of stored results, zero keeps them forever
	TTL time.Duration
}

func (s *Storage) GetResult(word string, isEnglish bool) (*Result, error) {
	key := marshalKey(word, lookupKeyType(isEnglish))
	var result Result
	err := s.DB.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &result)
		})
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storage) PutResult(word string, isEnglish bool, result *Result) error {
	if result == nil {
		return errors.New("nil result can not be stored")
	}
	value, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("can not marshal result: %w", err)
	}
	entry := badger.NewEntry(marshalKey(word, lookupKeyType(isEnglish)), value)
	if s.TTL > 0 {
		entry = entry.WithTTL(s.TTL)
	}
	return s.DB.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	})
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func marshalKey(k string, t keyType) []byte {
	result := make([]byte, 0, len(k)+1)
	result = append(result, byte(t))
	return append(result, []byte(k)...)
}

func unmarshalKey(data []byte, expected keyType) (string, error) {
	if len(data) < 1 {
		return "", errors.New("key length must be at least 1")
	}
	if data[0] != byte(expected) {
		return "", fmt.Errorf("key type doesn't equal to expected type")
	}
	return string(data[1:]), nil
}
