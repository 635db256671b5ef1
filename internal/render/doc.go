// Package render turns decoded IRI records into Prometheus text exposition.
//
// Output is built by hand rather than through expfmt so that integer values
// keep their exact decimal form (expfmt prints float64, which turns large
// memory figures into exponent notation). Every family is a gauge with a
// HELP line, a TYPE line and its samples; families are separated by one
// blank line. Rendering is pure and cannot fail.
package render
