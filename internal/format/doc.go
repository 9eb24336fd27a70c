// Package format holds the stream selection and classification rules: it
// turns quality labels into fallback-ordered engine selection expressions and
// raw stream descriptors into display-ready options. Everything here is pure;
// no input, however malformed, produces an error.
package format
