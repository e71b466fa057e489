package xcrypto

import "crypto/rand"

// RandReader is the thread-safe CSPRNG collaborator this spec's concurrency
// model calls for (§5: "Randomness is the only shared resource; it is
// obtained from a thread-safe CSPRNG collaborator"). Defaulting to
// crypto/rand.Reader and accepting substitution lets tests use a
// deterministic source without threading a *rand.Rand through every call.
var RandReader = rand.Reader

// RandomBytes fills and returns n random bytes read from RandReader.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := RandReader.Read(b); err != nil {
		panic("xcrypto: RandReader failed: " + err.Error())
	}
	return b
}
