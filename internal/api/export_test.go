package api

// ErrorEnvelope exposes the unexported wire shape to the external test package.
type ErrorEnvelope = errorEnvelope
