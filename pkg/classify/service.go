package classify

import (
	"context"
	"sort"
	"strings"
)

// DefaultGoal is used when a request supplies no classification_goal.
const DefaultGoal = "Classify this startup founder profile based on the questionnaire answers below."

// Classification is the remote service's answer: Label is the trimmed text
// used as the classification, Raw the unmodified generation.
type Classification struct {
	Label string
	Raw   string
}

type ClassifyService interface {
	Classify(ctx context.Context, results map[string]string, goal string) (Classification, error)
}

type classifyService struct {
	generator Generator
}

// NewClassifyService wraps a Generator. A nil generator yields a service
// that refuses every request with ErrNotConfigured.
func NewClassifyService(generator Generator) ClassifyService {
	return &classifyService{generator: generator}
}

func (s *classifyService) Classify(ctx context.Context, results map[string]string, goal string) (Classification, error) {
	if s.generator == nil {
		return Classification{}, ErrNotConfigured
	}

	raw, err := s.generator.GenerateContent(ctx, BuildPrompt(results, goal))
	if err != nil {
		return Classification{}, err
	}

	return Classification{Label: strings.TrimSpace(raw), Raw: raw}, nil
}

// BuildPrompt concatenates the goal and each question/answer pair.
// Questions are emitted in sorted order so the same questionnaire always
// produces the same prompt.
func BuildPrompt(results map[string]string, goal string) string {
	if strings.TrimSpace(goal) == "" {
		goal = DefaultGoal
	}

	questions := make([]string, 0, len(results))
	for q := range results {
		questions = append(questions, q)
	}
	sort.Strings(questions)

	var sb strings.Builder
	sb.WriteString(goal)
	sb.WriteString("\n")
	for _, q := range questions {
		sb.WriteString("\nQ: ")
		sb.WriteString(q)
		sb.WriteString("\nA: ")
		sb.WriteString(results[q])
	}
	return sb.String()
}
