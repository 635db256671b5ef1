package iri

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Command names a remote IRI API operation.
type Command string

const (
	CommandGetNodeInfo  Command = "getNodeInfo"
	CommandGetNeighbors Command = "getNeighbors"
)

// APIVersion is sent in the X-IOTA-API-Version header of every call.
const APIVersion = "1"

type commandBody struct {
	Command Command `json:"command"`
}

// NewRequest builds the PUT request that invokes command on the node at address.
// It fails with a *TransportError if address is not an absolute http(s) URL.
func NewRequest(ctx context.Context, address string, command Command) (*http.Request, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, &TransportError{Command: command, Err: fmt.Errorf("parse address: %w", err)}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &TransportError{Command: command, Err: errors.New("address must be an absolute http(s) URL")}
	}

	body, err := json.Marshal(commandBody{Command: command})
	if err != nil {
		return nil, &TransportError{Command: command, Err: fmt.Errorf("encode body: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Command: command, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("X-IOTA-API-Version", APIVersion)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
