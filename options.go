package mvp

import "log/slog"

// StackOption configures a MatrixStack during creation.
//
// Example:
//
//	// Default stack
//	ms := mvp.NewMatrixStack()
//
//	// Deeper pre-allocation and a dedicated logger
//	ms := mvp.NewMatrixStack(mvp.WithCapacity(32), mvp.WithStackLogger(l))
type StackOption func(*stackOptions)

// stackOptions holds optional configuration for MatrixStack creation.
type stackOptions struct {
	capacity int
	logger   *slog.Logger
}

// defaultStackCapacity covers the nesting depth of typical scenes
// without reallocating.
const defaultStackCapacity = 8

// defaultStackOptions returns the default stack options.
func defaultStackOptions() stackOptions {
	return stackOptions{
		capacity: defaultStackCapacity,
		logger:   nil, // Falls back to the package logger
	}
}

// WithCapacity sets the number of matrices pre-allocated per mode.
// Values below 1 are ignored. The stack still grows past the capacity.
func WithCapacity(n int) StackOption {
	return func(o *stackOptions) {
		if n >= 1 {
			o.capacity = n
		}
	}
}

// WithStackLogger sets a logger used by this stack only.
// Without it the stack logs through Logger().
func WithStackLogger(l *slog.Logger) StackOption {
	return func(o *stackOptions) {
		o.logger = l
	}
}
