package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `["a","b"]`, `["a","b"]`},
		{"fenced", "```\n[\"a\",\"b\"]\n```", `["a","b"]`},
		{"fenced json tag", "```json\n[\"a\",\"b\"]\n```", `["a","b"]`},
		{"leading whitespace", "  \n```json\n{\"score\": 5}\n```  ", `{"score": 5}`},
		{"no closing fence", "```json\n[\"a\"]", `["a"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFences(tc.in))
		})
	}
}

func TestParseQuestionListStrictJSON(t *testing.T) {
	questions := ParseQuestionList(`["What is a goroutine?", "Explain channels."]`)
	assert.Equal(t, []string{"What is a goroutine?", "Explain channels."}, questions)

	questions = ParseQuestionList("```json\n[\"Only one question?\"]\n```")
	assert.Equal(t, []string{"Only one question?"}, questions)

	// Blank elements inside a valid array are dropped.
	questions = ParseQuestionList(`["What is REST?", "  ", ""]`)
	assert.Equal(t, []string{"What is REST?"}, questions)
}

func TestParseQuestionListLineFallback(t *testing.T) {
	raw := "What is a goroutine?\n\nExplain channels.\n   \nWhat does defer do?"
	questions := ParseQuestionList(raw)
	assert.Equal(t, []string{
		"What is a goroutine?",
		"Explain channels.",
		"What does defer do?",
	}, questions)
}

func TestParseQuestionListEmptyInput(t *testing.T) {
	assert.Empty(t, ParseQuestionList(""))
	assert.Empty(t, ParseQuestionList("```\n```"))
}

func TestParseEvaluation(t *testing.T) {
	eval, ok := ParseEvaluation(`{"score": 7, "strengths": "s", "weaknesses": "w", "advice": "a"}`)
	assert.True(t, ok)
	assert.Equal(t, Evaluation{Score: 7, Strengths: "s", Weaknesses: "w", Advice: "a"}, eval)

	eval, ok = ParseEvaluation("```json\n{\"score\": 9, \"strengths\": \"s\", \"weaknesses\": \"w\", \"advice\": \"a\"}\n```")
	assert.True(t, ok)
	assert.Equal(t, 9, eval.Score)
}

func TestParseEvaluationClampsScore(t *testing.T) {
	eval, ok := ParseEvaluation(`{"score": 15, "strengths": "s", "weaknesses": "w", "advice": "a"}`)
	assert.True(t, ok)
	assert.Equal(t, 10, eval.Score)

	eval, ok = ParseEvaluation(`{"score": -3, "strengths": "s", "weaknesses": "w", "advice": "a"}`)
	assert.True(t, ok)
	assert.Equal(t, 0, eval.Score)
}

func TestParseEvaluationMalformed(t *testing.T) {
	_, ok := ParseEvaluation("The candidate did quite well overall, I would give this a 7.")
	assert.False(t, ok)

	_, ok = ParseEvaluation("")
	assert.False(t, ok)
}

func TestDefaultEvaluationIsMidRange(t *testing.T) {
	eval := DefaultEvaluation()
	assert.Equal(t, 5, eval.Score)
	assert.NotEmpty(t, eval.Strengths)
	assert.NotEmpty(t, eval.Weaknesses)
	assert.NotEmpty(t, eval.Advice)
}
