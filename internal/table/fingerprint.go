package table

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// DomainFingerprint prefixes fingerprint hashes.
// Version suffix enables future algorithm migration.
const DomainFingerprint = "truthtable/fingerprint/v1"

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// canonicalTable is the hashed form of a Result: keys in sorted order,
// expression text excluded.
type canonicalTable struct {
	Rows []Row    `json:"rows"`
	Vars []string `json:"vars"`
}

// Fingerprint identifies the truth table independently of how the
// expression was written. Two results share a fingerprint exactly when
// they have the same variables and the same rows.
func (r *Result) Fingerprint() (string, error) {
	vars := r.Vars
	if vars == nil {
		vars = []string{}
	}
	data, err := json.Marshal(canonicalTable{Rows: r.Rows, Vars: vars})
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainFingerprint, data), nil
}

// MustFingerprint is like Fingerprint but panics on error.
func (r *Result) MustFingerprint() string {
	fp, err := r.Fingerprint()
	if err != nil {
		panic(err)
	}
	return fp
}
