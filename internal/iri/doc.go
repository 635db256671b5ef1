// Package iri talks to an IOTA IRI node's JSON command API.
//
// Every call is a PUT to the node's address with an X-IOTA-API-Version header
// and a {"command": "..."} body (request.go). Responses are decoded strictly
// into NodeInfo or Neighbors (decode.go): every declared field must be
// present, unknown fields are ignored.
//
// Client (client.go) owns the *http.Client, including the upstream timeout,
// TLS settings and the optional auth round tripper. Failures come back as
// *TransportError or *DecodeError so callers can classify them.
package iri
