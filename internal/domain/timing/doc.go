// Package timing defines the contracts, data types and error taxonomy of the
// RSA PKCS#1 v1.5 decryption timing harness: the decrypt capability being
// measured, the per-block sample, the trace recorder and the loop service
// that drives them.
package timing
