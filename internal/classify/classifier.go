package classify

import (
	"context"
	"errors"
	"strings"

	"fixitplus-be/internal/category"
	"fixitplus-be/internal/logger"

	"go.uber.org/zap"
)

// Classifier labels an issue photo with a category name. Implementations
// may fail; Suggester is the layer that absorbs that.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (string, error)
}

// Suggester wraps a Classifier so that categorization can never block or
// break issue creation: any transport error or out-of-set answer degrades
// to the fallback category. The caller may always override the suggestion.
type Suggester struct {
	classifier Classifier
}

func NewSuggester(c Classifier) *Suggester {
	return &Suggester{classifier: c}
}

// disabledClassifier stands in when no API key is configured, so the
// server still boots and suggestions degrade to the fallback category.
type disabledClassifier struct{}

func (disabledClassifier) Classify(ctx context.Context, image []byte) (string, error) {
	return "", errors.New("classifier is not configured")
}

func Disabled() Classifier {
	return disabledClassifier{}
}

// Suggest returns a member of the closed category set, always.
func (s *Suggester) Suggest(ctx context.Context, image []byte) string {
	log := logger.FromCtx(ctx)

	name, err := s.classifier.Classify(ctx, image)
	if err != nil {
		log.Warn("categorization degraded, using fallback", zap.Error(err))
		return category.Fallback
	}

	name = strings.TrimSpace(name)
	if !category.Valid(name) {
		log.Warn("classifier returned a name outside the category set",
			zap.String("category", name),
		)
		return category.Fallback
	}

	return name
}
