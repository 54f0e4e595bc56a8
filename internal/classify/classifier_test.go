package classify

import (
	"context"
	"errors"
	"testing"

	"fixitplus-be/internal/category"

	"github.com/stretchr/testify/assert"
)

// stubClassifier is the deterministic test double for the capability interface.
type stubClassifier struct {
	name string
	err  error
}

func (s *stubClassifier) Classify(ctx context.Context, image []byte) (string, error) {
	return s.name, s.err
}

func TestSuggester_Suggest(t *testing.T) {
	ctx := context.Background()
	img := []byte{0xff, 0xd8, 0xff} // jpeg magic, contents irrelevant here

	t.Run("Member passes through", func(t *testing.T) {
		s := NewSuggester(&stubClassifier{name: "Electrical"})
		assert.Equal(t, "Electrical", s.Suggest(ctx, img))
	})

	t.Run("Whitespace trimmed", func(t *testing.T) {
		s := NewSuggester(&stubClassifier{name: "  Plumbing\n"})
		assert.Equal(t, "Plumbing", s.Suggest(ctx, img))
	})

	t.Run("Out-of-set name falls back", func(t *testing.T) {
		s := NewSuggester(&stubClassifier{name: "Banana"})
		assert.Equal(t, category.Fallback, s.Suggest(ctx, img))
	})

	t.Run("Transport failure falls back", func(t *testing.T) {
		s := NewSuggester(&stubClassifier{err: errors.New("503 model overloaded")})
		assert.Equal(t, category.Fallback, s.Suggest(ctx, img))
	})

	t.Run("Disabled classifier falls back", func(t *testing.T) {
		s := NewSuggester(Disabled())
		assert.Equal(t, category.Fallback, s.Suggest(ctx, img))
	})
}

func TestClassifyPrompt(t *testing.T) {
	p := classifyPrompt()
	for _, name := range category.Names() {
		assert.Contains(t, p, name)
	}
}

func TestNewGeminiClassifier_RequiresKey(t *testing.T) {
	_, err := NewGeminiClassifier(context.Background(), "")
	assert.Error(t, err)
}
