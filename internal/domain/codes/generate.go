package codes

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"gorm.io/gorm"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 7
)

// Generate produces a new unique 7-character alphanumeric code. 36 possible
// characters to the seventh power is 78.4 billion possible codes, so a
// collision is vanishingly rare, but the retry loop is still mandatory: the
// candidate is checked against every existing primary key and re-sampled on
// a hit. Store errors other than not-found abort generation.
func Generate(db *gorm.DB) (string, error) {
	for {
		candidate, err := randomCode()
		if err != nil {
			return "", err
		}
		var existing Code
		err = db.Select("id").Where("id = ?", candidate).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("check code uniqueness: %w", err)
		}
	}
}

func randomCode() (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))
	buf := make([]byte, codeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
