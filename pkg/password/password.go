package password

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "@$!%*?&#"

	// GeneratedLength is the length of server-generated passwords for
	// doctor-provisioned accounts.
	GeneratedLength = 12
)

// Hash returns the bcrypt digest of a plaintext password.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored bcrypt digest.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// GenerateSecure returns a random password containing at least one
// lowercase letter, one uppercase letter, one digit and one special
// character. Used when a doctor provisions an account: the plaintext is
// returned to the caller exactly once and only its hash is stored.
func GenerateSecure() (string, error) {
	all := lowerChars + upperChars + digitChars + specialChars

	buf := make([]byte, GeneratedLength)

	// Guarantee one character from each class, fill the rest from the
	// full alphabet, then shuffle.
	classes := []string{lowerChars, upperChars, digitChars, specialChars}
	for i, class := range classes {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}
	for i := len(classes); i < GeneratedLength; i++ {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}

	for i := len(buf) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		buf[i], buf[j.Int64()] = buf[j.Int64()], buf[i]
	}

	return string(buf), nil
}

func randomChar(from string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(from))))
	if err != nil {
		return 0, err
	}
	return from[n.Int64()], nil
}
