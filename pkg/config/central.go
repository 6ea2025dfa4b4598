package config

import (
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	globalMu     sync.Mutex
	globalConfig *Options
)

// Initialize sets the process-wide options. Passing nil makes the next
// Get load them again.
func Initialize(opts *Options) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = opts
}

// Get returns the process-wide options, loading them on first use. When
// loading fails the embedded defaults are used and the failure is logged.
func Get() *Options {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalConfig == nil {
		opts, err := Load("")
		if err != nil {
			log.Warn().Err(err).Msg("Failed to load configuration, using defaults")
			opts = Defaults()
		}
		globalConfig = opts
	}
	return globalConfig
}
