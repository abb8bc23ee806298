package foodkey

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// maxAttempts caps the regeneration loop. A UUID collision is near
// impossible, the cap only guards against a broken checker.
const maxAttempts = 5

var ErrKeyGenerationFailed = errors.New("failed to generate a unique public food key")

type (
	// KeyChecker reports whether a public food key is already taken in one
	// of the key spaces (foods, recipes).
	KeyChecker interface {
		PublicKeyExists(ctx context.Context, key string) (bool, error)
	}

	Generator interface {
		Generate(ctx context.Context) (string, error)
	}

	generator struct {
		checkers []KeyChecker
	}
)

func NewGenerator(checkers ...KeyChecker) Generator {
	return &generator{checkers: checkers}
}

func (g *generator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		key := uuid.NewString()

		taken := false
		for _, checker := range g.checkers {
			exists, err := checker.PublicKeyExists(ctx, key)
			if err != nil {
				return "", err
			}
			if exists {
				taken = true
				break
			}
		}
		if !taken {
			return key, nil
		}
	}
	return "", ErrKeyGenerationFailed
}
