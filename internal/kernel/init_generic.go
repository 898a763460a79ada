//go:build purego || !(amd64 || arm64)

package kernel

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-vector/internal/kernel/arch/generic"
)
