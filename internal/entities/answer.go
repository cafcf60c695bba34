package entities

import (
	"encoding/json"
	"fmt"
)

// AnswerKind discriminates the payload variant held by an AnswerValue.
type AnswerKind string

const (
	AnswerNone  AnswerKind = ""      // serializes as null
	AnswerText  AnswerKind = "text"  // single string (MCQ option value, true/false, free text)
	AnswerList  AnswerKind = "list"  // ordered list of strings (LIST, ORDER)
	AnswerPairs AnswerKind = "pairs" // matching pairs (MATCH)
)

// MatchPair is one left/right pairing of a MATCH answer.
type MatchPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// AnswerValue is a tagged union for the shape-shifting correctAnswer and
// options payloads of questions and feed items. Depending on the question
// type the wire value is a string, an array of strings, or an array of
// {left,right} pairs; the Kind field makes the active variant explicit
// instead of an untyped blob.
type AnswerValue struct {
	Kind  AnswerKind
	Text  string
	Items []string
	Pairs []MatchPair
}

// TextAnswer builds a plain-text answer value.
func TextAnswer(s string) AnswerValue { return AnswerValue{Kind: AnswerText, Text: s} }

// ListAnswer builds an ordered-list answer value.
func ListAnswer(items ...string) AnswerValue { return AnswerValue{Kind: AnswerList, Items: items} }

// PairsAnswer builds a matching-pairs answer value.
func PairsAnswer(pairs ...MatchPair) AnswerValue { return AnswerValue{Kind: AnswerPairs, Pairs: pairs} }

// IsZero reports whether no variant is set.
func (a AnswerValue) IsZero() bool { return a.Kind == AnswerNone }

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerText:
		return json.Marshal(a.Text)
	case AnswerList:
		items := a.Items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	case AnswerPairs:
		pairs := a.Pairs
		if pairs == nil {
			pairs = []MatchPair{}
		}
		return json.Marshal(pairs)
	default:
		return []byte("null"), nil
	}
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	*a = AnswerValue{}

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch v := probe.(type) {
	case nil:
		return nil
	case string:
		*a = TextAnswer(v)
		return nil
	case []any:
		if len(v) == 0 {
			*a = ListAnswer()
			return nil
		}
		if _, isObject := v[0].(map[string]any); isObject {
			var pairs []MatchPair
			if err := json.Unmarshal(data, &pairs); err != nil {
				return fmt.Errorf("answer pairs: %w", err)
			}
			*a = PairsAnswer(pairs...)
			return nil
		}
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("answer list: %w", err)
		}
		*a = ListAnswer(items...)
		return nil
	default:
		return fmt.Errorf("answer value: unsupported JSON type %T", probe)
	}
}

// TableGrid is the row-major cell grid of a TABLE question. A nil grid
// serializes as null.
type TableGrid [][]string
