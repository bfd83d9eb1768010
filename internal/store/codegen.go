package store

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	apperrors "alvs-system/pkg/errors"
)

const (
	codeSuffixLength = 5
	codeAttempts     = 10
	base36Alphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// generateCodeLocked builds a business code from the brand prefix, the entry
// date and a random base36 suffix, e.g. "ALVS-250829-K3Q7Z". The suffix alone
// gives ~60M combinations per day; the regenerate loop closes the residual
// collision window against codes already in the store.
func (s *Store) generateCodeLocked() (string, error) {
	day := time.Now().Format("060102")
	for attempt := 0; attempt < codeAttempts; attempt++ {
		var suffix strings.Builder
		for i := 0; i < codeSuffixLength; i++ {
			suffix.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
		}

		code := fmt.Sprintf("%s-%s-%s", s.codePrefix, day, suffix.String())
		if !s.codeExistsLocked(code) {
			return code, nil
		}
	}
	return "", apperrors.ErrCodeExhausted
}

func (s *Store) codeExistsLocked(code string) bool {
	for i := range s.equipments {
		if s.equipments[i].Code == code {
			return true
		}
	}
	return false
}
