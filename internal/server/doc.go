// Package server wires and runs the application's HTTP server and
// background workers.
//
// It provides orchestration for their lifecycles, including startup, signal
// handling, and graceful shutdown.
package server
