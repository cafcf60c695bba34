package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValueUnmarshalProbesVariant(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want AnswerValue
	}{
		{"null", `null`, AnswerValue{}},
		{"string", `"صواب"`, TextAnswer("صواب")},
		{"list", `["أ", "ب", "ج"]`, ListAnswer("أ", "ب", "ج")},
		{"empty list", `[]`, ListAnswer()},
		{"pairs", `[{"left": "قلب", "right": "ضخ الدم"}]`, PairsAnswer(MatchPair{Left: "قلب", Right: "ضخ الدم"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got AnswerValue
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.Equal(t, tt.want.Text, got.Text)
			assert.Equal(t, tt.want.Items, got.Items)
			assert.Equal(t, tt.want.Pairs, got.Pairs)
		})
	}
}

func TestAnswerValueUnmarshalRejectsNumbers(t *testing.T) {
	var got AnswerValue
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}

func TestAnswerValueMarshal(t *testing.T) {
	tests := []struct {
		name string
		in   AnswerValue
		want string
	}{
		{"none is null", AnswerValue{}, `null`},
		{"text", TextAnswer("صواب"), `"صواب"`},
		{"list", ListAnswer("أ", "ب"), `["أ","ب"]`},
		{"nil items still a list", AnswerValue{Kind: AnswerList}, `[]`},
		{"pairs", PairsAnswer(MatchPair{Left: "l", Right: "r"}), `[{"left":"l","right":"r"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestAnswerValueRoundTripInsideQuestion(t *testing.T) {
	q := Question{
		ID:            "q1",
		Type:          QuestionMCQ,
		TextAr:        "ما عاصمة سوريا؟",
		CorrectAnswer: TextAnswer("دمشق"),
		Options:       ListAnswer("دمشق", "حلب", "حمص"),
		ConceptIDs:    []string{},
	}

	data, err := json.Marshal(q)
	require.NoError(t, err)

	var got Question
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, q.CorrectAnswer, got.CorrectAnswer)
	assert.Equal(t, q.Options, got.Options)
	require.NoError(t, got.Validate())
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"mcq text answer list options", Question{Type: QuestionMCQ, CorrectAnswer: TextAnswer("أ"), Options: ListAnswer("أ", "ب")}, false},
		{"mcq list answer", Question{Type: QuestionMCQ, CorrectAnswer: ListAnswer("أ")}, true},
		{"order list answer", Question{Type: QuestionOrder, CorrectAnswer: ListAnswer("١", "٢")}, false},
		{"order text answer", Question{Type: QuestionOrder, CorrectAnswer: TextAnswer("١")}, true},
		{"match pairs both sides", Question{Type: QuestionMatch, CorrectAnswer: PairsAnswer(MatchPair{}), Options: PairsAnswer(MatchPair{})}, false},
		{"short answer with options", Question{Type: QuestionShortAnswer, CorrectAnswer: TextAnswer("x"), Options: ListAnswer("أ")}, true},
		{"unset payloads always pass", Question{Type: QuestionTable}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptStringTrimsAndNils(t *testing.T) {
	assert.Nil(t, OptString(""))
	assert.Nil(t, OptString("   \t"))

	got := OptString("قيمة")
	require.NotNil(t, got)
	assert.Equal(t, "قيمة", *got)
}

func TestOptInt(t *testing.T) {
	assert.Nil(t, OptInt(0))

	got := OptInt(2024)
	require.NotNil(t, got)
	assert.Equal(t, 2024, *got)
}

func TestStringVal(t *testing.T) {
	assert.Equal(t, "", StringVal(nil))
	s := "نص"
	assert.Equal(t, "نص", StringVal(&s))
}
