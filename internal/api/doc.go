// Package api wires HTTP and websocket routes to the game services. It
// translates requests into service calls and service errors back into
// status codes; game rules live in internal/service.
package api
