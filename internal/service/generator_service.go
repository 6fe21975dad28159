package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Prepwise/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// QuestionSpec describes the question list requested from the generator.
type QuestionSpec struct {
	Role            string
	ExperienceLevel string
	Count           int
}

// Evaluation is the structured verdict for a single answer.
type Evaluation struct {
	Score      int    `json:"score"` // 0-10
	Strengths  string `json:"strengths"`
	Weaknesses string `json:"weaknesses"`
	Advice     string `json:"advice"`
}

// ContentGenerator is the stateless capability behind question generation and
// answer scoring. The Gemini implementation below is the production one; tests
// substitute a double.
type ContentGenerator interface {
	GenerateQuestions(ctx context.Context, spec QuestionSpec) ([]string, error)
	EvaluateAnswer(ctx context.Context, questionPrompt, answerText string) (Evaluation, error)
}

type geminiGenerator struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

func NewGeminiGenerator(cfg *config.Config) (ContentGenerator, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. ContentGenerator will be non-functional.")
		return &geminiGenerator{cfg: cfg, model: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.Gemini.Model)
	return &geminiGenerator{model: model, cfg: cfg}, nil
}

func (g *geminiGenerator) GenerateQuestions(ctx context.Context, spec QuestionSpec) ([]string, error) {
	if g.model == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	prompt.WriteString("You are an experienced technical interviewer preparing a mock interview.\n")
	fmt.Fprintf(&prompt, "Generate exactly %d interview questions for the role %q at experience level %q.\n\n", spec.Count, spec.Role, spec.ExperienceLevel)
	prompt.WriteString("Output format contract:\n")
	prompt.WriteString("- Respond with a single JSON array of plain strings, one question per element.\n")
	prompt.WriteString("- No numbering, no markdown, no code fences, no commentary before or after the array.\n")
	prompt.WriteString("- Each question must be self-contained and answerable verbally.\n")

	raw, err := g.generate(ctx, prompt.String())
	if err != nil {
		return nil, err
	}

	questions := ParseQuestionList(raw)
	if len(questions) == 0 {
		log.Warn().Str("raw", raw).Msg("Generator returned no usable question lines")
	}
	return questions, nil
}

func (g *geminiGenerator) EvaluateAnswer(ctx context.Context, questionPrompt, answerText string) (Evaluation, error) {
	if g.model == nil {
		return Evaluation{}, fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	prompt.WriteString("You are an experienced technical interviewer scoring a spoken mock-interview answer.\n\n")
	prompt.WriteString("Question:\n---\n")
	prompt.WriteString(questionPrompt)
	prompt.WriteString("\n---\n\nCandidate's Answer:\n---\n")
	prompt.WriteString(answerText)
	prompt.WriteString("\n---\n\n")
	prompt.WriteString("Scoring contract (be lenient):\n")
	prompt.WriteString("- The answer comes from speech-to-text: do NOT penalize transcription artifacts, filler words, or grammar slips.\n")
	prompt.WriteString("- If the core concept is correct, the score is at least 5 even when the delivery is rough.\n")
	prompt.WriteString("- Reserve 0-2 for answers that are clearly wrong or off-topic.\n\n")
	prompt.WriteString("Respond with a single JSON object, no code fences, no extra text:\n")
	prompt.WriteString(`{"score": <integer 0-10>, "strengths": "<string>", "weaknesses": "<string>", "advice": "<string>"}`)
	prompt.WriteString("\n")

	raw, err := g.generate(ctx, prompt.String())
	if err != nil {
		return Evaluation{}, err
	}

	eval, ok := ParseEvaluation(raw)
	if !ok {
		log.Warn().Str("raw", raw).Msg("Generator evaluation was not parseable, using default evaluation")
		return DefaultEvaluation(), nil
	}
	return eval, nil
}

// generate runs one Gemini call and concatenates the text parts of the first
// candidate.
func (g *geminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error")
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return text, nil
}

// DefaultEvaluation is the fixed fallback stored when the generator replied
// but its output could not be parsed. Submission never fails on malformed
// output once the remote call itself succeeded.
func DefaultEvaluation() Evaluation {
	return Evaluation{
		Score:      5,
		Strengths:  "The answer addresses the question.",
		Weaknesses: "The evaluation service could not analyze this answer in detail.",
		Advice:     "Review the core concepts behind this question and try to structure your answer with a short example.",
	}
}

// StripCodeFences removes a wrapping markdown code fence (``` or ```json) if
// present. The generator gives no format guarantee, so callers defensively
// strip before parsing.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx != -1 {
		// Drop the language tag on the opening fence line, e.g. "json".
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseQuestionList decodes the generator's question output. Stage one is a
// strict JSON array of strings; on failure the documented fallback splits the
// raw text on line breaks and discards empty lines.
func ParseQuestionList(raw string) []string {
	cleaned := StripCodeFences(raw)

	var questions []string
	if err := json.Unmarshal([]byte(cleaned), &questions); err == nil {
		out := make([]string, 0, len(questions))
		for _, q := range questions {
			if trimmed := strings.TrimSpace(q); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}

	var out []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "```" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// ParseEvaluation decodes the generator's evaluation output. Returns ok=false
// when the reply is not the requested JSON object; the caller then applies
// DefaultEvaluation. Scores outside 0-10 are clamped.
func ParseEvaluation(raw string) (Evaluation, bool) {
	cleaned := StripCodeFences(raw)

	var eval Evaluation
	if err := json.Unmarshal([]byte(cleaned), &eval); err != nil {
		return Evaluation{}, false
	}
	if eval.Score < 0 {
		eval.Score = 0
	}
	if eval.Score > 10 {
		eval.Score = 10
	}
	return eval, true
}
