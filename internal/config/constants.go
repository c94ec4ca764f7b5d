package config

import "time"

const (
	// Inference call timeout on the bot side. A timeout is surfaced as the
	// same failure class as any other transport error.
	RequestTimeout = 30 * time.Second

	// Per-request timeout on the inference server
	ServerRequestTimeout = 60 * time.Second

	// Shutdown grace period for the inference server
	ShutdownTimeout = 30 * time.Second

	// Image classifiers take square inputs of this edge length
	ImageEdge = 128
)
