package logger

import (
	"sort"
	"sync"
)

// Component logger names used across restbase.
const (
	ComponentClient    = "restbase.client"
	ComponentTransport = "restbase.transport"
	ComponentConfig    = "restbase.config"
)

// Components lists the restbase component loggers registered by
// RegisterDefaults when no names are given.
var Components = []string{ComponentClient, ComponentTransport, ComponentConfig}

var (
	componentsMu sync.RWMutex
	components   = map[string]*Logger{}
)

// Register installs l as the logger for component name, replacing any
// previous one.
func Register(name string, l *Logger) {
	componentsMu.Lock()
	components[name] = l
	componentsMu.Unlock()
}

// Get returns the logger registered for component name. Unregistered names
// get the global logger tagged with the component, so callers never need a
// nil check.
func Get(name string) *Logger {
	componentsMu.RLock()
	l, ok := components[name]
	componentsMu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults derives a component logger from the global logger for
// each name, or for every entry of Components when names is empty. Call it
// after Init so the configured level and format apply.
func RegisterDefaults(names ...string) {
	if len(names) == 0 {
		names = Components
	}
	global := GetGlobalLogger()
	componentsMu.Lock()
	for _, name := range names {
		components[name] = global.WithComponent(name)
	}
	componentsMu.Unlock()
}

// Registered returns the names of all registered component loggers, sorted.
func Registered() []string {
	componentsMu.RLock()
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	componentsMu.RUnlock()
	sort.Strings(names)
	return names
}
