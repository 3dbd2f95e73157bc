package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed at 12. Deliberately slow to keep offline brute force
// expensive.
const bcryptCost = 12

// HashPassword produces a salted bcrypt hash of password. Two calls with the
// same password produce different hashes.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
