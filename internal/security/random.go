package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	upperAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet = "abcdefghijkmnopqrstuvwxyz"
	digitAlphabet = "23456789"

	// PasswordAlphabet leaves out characters that are easy to misread.
	PasswordAlphabet = upperAlphabet + lowerAlphabet + digitAlphabet
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
	errTooShort       = errors.New("length cannot hold every character class")
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if alphabet == "" {
		return "", errEmptyAlphabet
	}

	value := make([]byte, length)
	for index := range value {
		char, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		value[index] = char
	}
	return string(value), nil
}

// PolicyPassword returns a random password holding at least one uppercase
// letter, one lowercase letter and one digit.
func PolicyPassword(length int) (string, error) {
	required := []string{upperAlphabet, lowerAlphabet, digitAlphabet}
	if length < len(required) {
		return "", errTooShort
	}

	rest, err := RandomString(length-len(required), PasswordAlphabet)
	if err != nil {
		return "", err
	}
	value := []byte(rest)
	for _, alphabet := range required {
		char, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		position, err := randomIndex(len(value) + 1)
		if err != nil {
			return "", err
		}
		value = append(value[:position], append([]byte{char}, value[position:]...)...)
	}
	return string(value), nil
}

func randomChar(alphabet string) (byte, error) {
	index, err := randomIndex(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[index], nil
}

func randomIndex(size int) (int, error) {
	position, err := rand.Int(rand.Reader, big.NewInt(int64(size)))
	if err != nil {
		return 0, err
	}
	return int(position.Int64()), nil
}
