// Package server runs the HTTP API and the gRPC health endpoint side by side
// and stops both when the process receives a termination signal.
package server
