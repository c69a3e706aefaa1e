package auth

import "golang.org/x/crypto/bcrypt"

// hashCost matches the reference deployment (bcrypt factor 10).
const hashCost = bcrypt.DefaultCost

// dummyHash is compared against when the user does not exist, so that a
// login attempt with an unknown email costs the same as one with a wrong
// password. Generated once from an unguessable random input.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("civicwatch-timing-pad"), hashCost)

// HashPassword one-way hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck performs a bcrypt comparison against a throwaway hash.
// Called on the unknown-email login path to keep response latency uniform.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
