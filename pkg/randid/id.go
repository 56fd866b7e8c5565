// Package randid generates the short identifiers pal uses as record keys.
package randid

import "crypto/rand"

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns n random characters drawn from a lowercase alphanumeric
// alphabet. The stores use eight-character IDs.
func Generate(n int) string {
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}

	return string(b)
}
