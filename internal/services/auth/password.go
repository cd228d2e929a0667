package auth

import "golang.org/x/crypto/bcrypt"

// PasswordCost matches the cost the seeding script has always used.
const PasswordCost = 10

func HashPassword(s string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(s), PasswordCost)
	return string(hashed), err
}

func ComparePassword(hashed string, normal string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(normal))
}
