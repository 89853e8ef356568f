package regionmap

import (
	"fmt"
	"net/netip"
	"os"
	"sync"

	"github.com/pg9182/ip2x"
	"github.com/phregion/phregion/pkg/phregion"
)

// DB wraps a file-backed IP2Location database. It is safe for concurrent use,
// and the database can be replaced while in use.
type DB struct {
	file *os.File
	db   *ip2x.DB
	mu   sync.RWMutex
}

// Load replaces the currently loaded database with the specified file. If name
// is empty, the existing database, if any, is reopened.
func (m *DB) Load(name string) error {
	if name == "" {
		m.mu.RLock()
		if m.file == nil {
			m.mu.RUnlock()
			return fmt.Errorf("no ip2location database loaded")
		}
		name = m.file.Name()
		m.mu.RUnlock()
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}

	db, err := ip2x.New(f)
	if err != nil {
		f.Close()
		return err
	}

	if p, _ := db.Info(); p != ip2x.IP2Location {
		f.Close()
		return fmt.Errorf("not an ip2location database")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file != nil {
		m.file.Close()
	}
	m.file = f
	m.db = db
	return nil
}

// Close closes the database file.
func (m *DB) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.file == nil {
		return nil
	}
	err := m.file.Close()
	m.file, m.db = nil, nil
	return err
}

// Lookup calls [ip2x.DB.Lookup] if a database is loaded.
func (m *DB) Lookup(ip netip.Addr) (ip2x.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return ip2x.Record{}, fmt.Errorf("no ip2location database loaded")
	}
	return m.db.Lookup(ip)
}

// GetRegion looks up ip and passes the record to fn, or GetRegion if fn is
// nil.
func (m *DB) GetRegion(ip netip.Addr, fn func(netip.Addr, Record) (phregion.Region, error)) (phregion.Region, error) {
	if fn == nil {
		fn = GetRegion
	}
	r, err := m.Lookup(ip)
	if err != nil {
		return "", fmt.Errorf("lookup %s: %w", ip, err)
	}
	return fn(ip, r)
}
