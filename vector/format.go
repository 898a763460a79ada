package vector

import (
	"strconv"
	"strings"
)

// FormatConfig controls how Format renders a container.
type FormatConfig struct {
	// MaxElements is the number of leading elements rendered.
	MaxElements int
	// Separator is written between elements.
	Separator string
	// Ellipsis marks elided elements.
	Ellipsis string
	// Precision is passed to strconv.FormatFloat with the 'g' verb; -1 selects
	// the shortest exact representation.
	Precision int
}

// FormatOption mutates a FormatConfig.
type FormatOption func(*FormatConfig)

// DefaultFormatConfig returns the configuration used by String.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		MaxElements: 25,
		Separator:   ", ",
		Ellipsis:    "…",
		Precision:   -1,
	}
}

// WithMaxElements sets how many leading elements are rendered.
func WithMaxElements(n int) FormatOption {
	return func(cfg *FormatConfig) {
		if n > 0 {
			cfg.MaxElements = n
		}
	}
}

// WithSeparator sets the element separator.
func WithSeparator(sep string) FormatOption {
	return func(cfg *FormatConfig) {
		cfg.Separator = sep
	}
}

// WithEllipsis sets the marker appended when elements are elided.
func WithEllipsis(marker string) FormatOption {
	return func(cfg *FormatConfig) {
		cfg.Ellipsis = marker
	}
}

// WithPrecision sets the number of significant digits, or -1 for shortest.
func WithPrecision(p int) FormatOption {
	return func(cfg *FormatConfig) {
		if p >= -1 {
			cfg.Precision = p
		}
	}
}

// ApplyFormatOptions applies zero or more options to the default config.
func ApplyFormatOptions(opts ...FormatOption) FormatConfig {
	cfg := DefaultFormatConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Format renders c as a bracketed, separated list. When c holds more than
// MaxElements elements only the first MaxElements are written, followed by
// the separator and the ellipsis: [0, 1, 2, …].
func Format[T Float](c Container[T], opts ...FormatOption) string {
	cfg := ApplyFormatOptions(opts...)

	bitSize := 64
	var zero T
	if _, ok := any(zero).(float32); ok {
		bitSize = 32
	}

	data := c.Data()
	n := len(data)
	limit := min(n, cfg.MaxElements)

	var sb strings.Builder
	sb.WriteByte('[')
	for i := range limit {
		sb.WriteString(strconv.FormatFloat(float64(data[i]), 'g', cfg.Precision, bitSize))
		if i < n-1 {
			sb.WriteString(cfg.Separator)
		}
		if n > cfg.MaxElements && i == cfg.MaxElements-1 {
			sb.WriteString(cfg.Ellipsis)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
