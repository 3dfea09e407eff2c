package storage

import (
	"fmt"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// gdataObject groups every sentinel record under one gdata object.
const gdataObject = "scores"

// GdataStore keeps records in the per-user application data directory
// managed by gdata (~/.local/share/<app> on Linux).
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the gdata manager for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	if appName == "" {
		appName = "f47-sentinel"
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata %s: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

// gdata properties must be plain file names.
func gdataProp(key string) string {
	return strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(key)
}

// Get loads a property. A missing property is not an error.
func (g *GdataStore) Get(key string) ([]byte, bool, error) {
	if g.m == nil {
		return nil, false, ErrClosed
	}
	prop := gdataProp(key)
	if !g.m.ObjectPropExists(gdataObject, prop) {
		return nil, false, nil
	}
	data, err := g.m.LoadObjectProp(gdataObject, prop)
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot load %s: %w", key, err)
	}
	return data, true, nil
}

// Set saves a property.
func (g *GdataStore) Set(key string, value []byte) error {
	if g.m == nil {
		return ErrClosed
	}
	if err := g.m.SaveObjectProp(gdataObject, gdataProp(key), value); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

// Close releases the manager. gdata holds no open handles.
func (g *GdataStore) Close() error {
	g.m = nil
	return nil
}
