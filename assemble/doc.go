// Package assemble renders ranked event records into the bounded text bundle
// handed to the answer generator, together with a description of the filters
// that produced it.
package assemble
