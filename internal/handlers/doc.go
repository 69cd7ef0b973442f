// Package handlers wires the contact relay and the JSON error surface into
// the HTTP app.
package handlers
