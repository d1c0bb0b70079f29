// Package adapter provides the dataset backend interface, a shared
// database/sql implementation and the backend registry.
package adapter

import "github.com/leapstack-labs/transfer/pkg/core"

// Type aliases so backends only need to import this package.
type (
	// Config is an alias for core.AdapterConfig.
	Config = core.AdapterConfig

	// Adapter is an alias for core.Adapter.
	Adapter = core.Adapter
)
