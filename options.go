package ggbutton

import "log/slog"

// Option configures a Decorator during creation.
//
// Example:
//
//	style := ggbutton.DefaultStyle()
//	style.ShadowDirection = ggbutton.South
//	d, err := ggbutton.New(ggbutton.WithStyle(style))
type Option func(*options)

// options holds optional configuration for Decorator creation.
type options struct {
	style  Style
	logger *slog.Logger
}

// defaultOptions returns the default decorator options.
func defaultOptions() options {
	return options{
		style:  DefaultStyle(),
		logger: nil, // falls back to the package logger
	}
}

// WithStyle sets the style shared by every widget the Decorator manages.
// The style is copied; later changes to s do not affect the Decorator.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithLogger sets a logger for this Decorator only, overriding the package
// logger configured with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
