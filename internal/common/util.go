package common

// WipeByteArray overwrites the buffer with zeros. Used to scrub passwords
// from memory once they have been encoded into the auth token.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
