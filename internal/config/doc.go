// Package config holds the exporter's process configuration.
//
// Top-level types:
//   - Config: iri_address, port, verbose, exclude_neighbors, upstream_timeout,
//     telemetry_port, auth, tls
//   - AuthConfig: mode (mtls|apikey|bearer|basic|none), cert/key/ca files,
//     header, key_env, token_env, username, password_env. Key(), Token() and
//     Password() resolve secrets from environment variables
//   - TLSConfig: insecure_skip_verify
//
// Load(path) reads an optional YAML file and applies defaults (port 9978,
// 10s upstream timeout, telemetry disabled). ParseFlags layers the command
// line on top: -a, -p, -v and -n override whatever the file says, but only
// when given explicitly. The result is validated once and then treated as
// read-only for the life of the process.
//
// Watch(ctx, path, onChange) uses fsnotify to notice edits to the file. The
// exporter does not apply them at runtime; main only logs that a restart is
// needed.
package config
