// Package cryptoalg defines the interfaces for preparing RSA key material and ciphertext
// inputs for the timing harness, such as key generation, PEM persistence and PKCS#1 v1.5 encryption.
package cryptoalg
