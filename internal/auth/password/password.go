package password

import "github.com/alexedwards/argon2id"

var params = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Hash produces a PHC-format argon2id hash with a fresh random salt, so two
// calls on the same plaintext never collide. The parameters travel inside the
// hash string, which keeps old hashes verifiable after a cost change.
func Hash(plain string) (string, error) {
	return argon2id.CreateHash(plain, params)
}

// Verify reports whether plain matches hash. A malformed hash string counts
// as a mismatch, never an error to the caller.
func Verify(plain, hash string) bool {
	ok, err := argon2id.ComparePasswordAndHash(plain, hash)
	if err != nil {
		return false
	}
	return ok
}
