// Package http implements the HTTP transport of the POS admin backend.
//
// Every request runs through the same pipeline: request identification,
// access logging, the optional global modules selected by FEATURES, body
// decoding and the request deadline. Matched routes then run their
// [RoutePolicy] (authenticate, authorize, validate) before the handler.
// Anything that fails, and any path that matches nothing, ends in the
// classifier which answers with a JSON envelope under /api and with a
// rendered page everywhere else.
package http
