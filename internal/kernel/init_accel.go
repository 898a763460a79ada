//go:build !purego && (amd64 || arm64)

package kernel

// This file imports the implementation packages to trigger their init()
// functions, which register entries with the per-width registries.

import (
	// Library-backed implementations
	_ "github.com/cwbudde/algo-vector/internal/kernel/arch/accel"
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-vector/internal/kernel/arch/generic"
)
