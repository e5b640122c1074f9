package filter

// eexec and charstring decryption share the same keyed stream cipher,
// seeded with a different initial state r0 (55665 for eexec, 4330 for
// charstrings). Grounded directly on
// seehuhn.de/go/sfnt/type1/eexec.go's obfuscateCharstring/
// deobfuscateCharstring, generalized to take the seed as a parameter so
// both callers share one implementation.
const (
	// EexecSeed is the initial cipher state used to decrypt the eexec
	// section of a Type 1 font.
	EexecSeed uint16 = 55665
	// CharstringSeed is the initial cipher state used to decrypt an
	// individual Type 1 charstring or Subrs entry.
	CharstringSeed uint16 = 4330

	c1 uint16 = 52845
	c2 uint16 = 22719
)

// Decrypt runs the eexec stream cipher over cipher, starting from the
// given seed, and discards the first skip plaintext bytes (they exist
// only to initialize the cipher state).
func Decrypt(cipher []byte, seed uint16, skip int) []byte {
	r := seed
	plain := make([]byte, 0, len(cipher)-skip)
	for i, c := range cipher {
		p := c ^ byte(r>>8)
		r = (uint16(c)+r)*c1 + c2
		if i >= skip {
			plain = append(plain, p)
		}
	}
	return plain
}

// Encrypt is the inverse of Decrypt: it prepends skip zero bytes as the
// seed bytes and runs the cipher forward over them and plain.
func Encrypt(plain []byte, seed uint16, skip int) []byte {
	r := seed
	cipher := make([]byte, skip+len(plain))
	for i := range cipher[:skip] {
		cipher[i] = 0
	}
	copy(cipher[skip:], plain)
	for i, p := range cipher {
		c := p ^ byte(r>>8)
		r = (uint16(c)+r)*c1 + c2
		cipher[i] = c
	}
	return cipher
}
