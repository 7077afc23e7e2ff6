// Package comic assembles a GenerationResult: the resolved news item, its six
// panels and the display title. Results are plain values owned by the request
// that built them; the package keeps no state between generations.
package comic
