package exporter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/obsidianstack/iri-exporter/internal/iri"
)

// UnsupportedMethodError is returned by Gate for any method other than GET.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported method %q", e.Method)
}

// UnsupportedPathError is returned by Gate for a GET on any path other than
// the scrape endpoint.
type UnsupportedPathError struct {
	Path string
}

func (e *UnsupportedPathError) Error() string {
	return fmt.Sprintf("unsupported path %q", e.Path)
}

// Kind classifies scrape failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnsupportedMethod
	KindUnsupportedPath
	KindTransport
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedMethod:
		return "unsupported_method"
	case KindUnsupportedPath:
		return "unsupported_path"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

type outcome struct {
	status int
	level  slog.Level
}

// outcomes is the single mapping from failure kind to HTTP status and log level.
var outcomes = map[Kind]outcome{
	KindUnsupportedMethod: {http.StatusMethodNotAllowed, slog.LevelWarn},
	KindUnsupportedPath:   {http.StatusNotFound, slog.LevelWarn},
	KindTransport:         {http.StatusInternalServerError, slog.LevelError},
	KindDecode:            {http.StatusInternalServerError, slog.LevelError},
	KindUnknown:           {http.StatusInternalServerError, slog.LevelError},
}

// Classify returns the Kind of err, looking through wrapping.
func Classify(err error) Kind {
	var (
		methodErr    *UnsupportedMethodError
		pathErr      *UnsupportedPathError
		transportErr *iri.TransportError
		decodeErr    *iri.DecodeError
	)
	switch {
	case errors.As(err, &methodErr):
		return KindUnsupportedMethod
	case errors.As(err, &pathErr):
		return KindUnsupportedPath
	case errors.As(err, &transportErr):
		return KindTransport
	case errors.As(err, &decodeErr):
		return KindDecode
	default:
		return KindUnknown
	}
}

// StatusCode returns the HTTP status a scrape failing with err responds with.
func StatusCode(err error) int {
	return outcomes[Classify(err)].status
}

// LogLevel returns the level err is logged at.
func LogLevel(err error) slog.Level {
	return outcomes[Classify(err)].level
}
