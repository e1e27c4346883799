package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

// attempt is one way of pulling text out of a provider response.
type attempt func() (string, bool)

// firstText runs attempts in order and returns the first non-empty text.
// raw is the last resort so the result is never empty for a parsed response.
func firstText(raw func() string, attempts ...attempt) string {
	for _, a := range attempts {
		if text, ok := a(); ok {
			return text
		}
	}
	return raw()
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}

func joinParts(parts []string) (string, bool) {
	if len(parts) == 0 {
		return "", false
	}
	return nonEmpty(strings.Join(parts, "\n"))
}

func dump(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

// chatText extracts the first choice's content from a chat completion.
func chatText(resp openai.ChatCompletionResponse) string {
	return firstText(func() string { return dump(resp) },
		func() (string, bool) {
			if len(resp.Choices) == 0 {
				return "", false
			}
			return nonEmpty(resp.Choices[0].Message.Content)
		},
		func() (string, bool) {
			if len(resp.Choices) == 0 {
				return "", false
			}
			var parts []string
			for _, p := range resp.Choices[0].Message.MultiContent {
				if p.Type == openai.ChatMessagePartTypeText && p.Text != "" {
					parts = append(parts, p.Text)
				}
			}
			return joinParts(parts)
		},
	)
}

// responsesText extracts text from a Responses API body: the aggregated
// output_text field, then a walk over the output list, then the raw body.
func responsesText(body []byte) string {
	return firstText(func() string { return string(body) },
		func() (string, bool) {
			v := gjson.GetBytes(body, "output_text")
			if v.Type != gjson.String {
				return "", false
			}
			return nonEmpty(v.String())
		},
		func() (string, bool) {
			return joinParts(outputParts(gjson.GetBytes(body, "output")))
		},
	)
}

func outputParts(output gjson.Result) []string {
	if !output.IsArray() {
		return nil
	}
	var parts []string
	output.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			parts = append(parts, item.String())
			return true
		}
		content := item.Get("content")
		switch {
		case content.IsArray():
			content.ForEach(func(_, c gjson.Result) bool {
				switch {
				case c.IsObject():
					if t := c.Get("text"); t.Exists() {
						parts = append(parts, t.String())
					}
				case c.Type == gjson.String:
					parts = append(parts, c.String())
				}
				return true
			})
		case content.Type == gjson.String:
			parts = append(parts, content.String())
		}
		return true
	})
	return parts
}

// legacyText reads the first choice of a legacy chat completion body. The
// choice's message content wins; a bare text field is used otherwise.
func legacyText(body []byte) (string, error) {
	choice := gjson.GetBytes(body, "choices.0")
	if !choice.Exists() {
		return "", fmt.Errorf("response has no choices")
	}
	if msg := choice.Get("message"); msg.Exists() {
		return msg.Get("content").String(), nil
	}
	return choice.Get("text").String(), nil
}

// geminiText extracts text from a generateContent response: the first
// candidate's text, then every candidate's parts, then a JSON dump.
// Thought parts are never part of the answer.
func geminiText(resp *genai.GenerateContentResponse) string {
	return firstText(func() string { return dump(resp) },
		func() (string, bool) {
			if resp == nil || len(resp.Candidates) != 1 {
				return "", false
			}
			return nonEmpty(candidateText(resp.Candidates[0], ""))
		},
		func() (string, bool) {
			if resp == nil {
				return "", false
			}
			var parts []string
			for _, c := range resp.Candidates {
				if t := candidateText(c, "\n"); t != "" {
					parts = append(parts, t)
				}
			}
			return joinParts(parts)
		},
	)
}

func candidateText(c *genai.Candidate, sep string) string {
	if c == nil || c.Content == nil {
		return ""
	}
	var parts []string
	for _, p := range c.Content.Parts {
		if p != nil && p.Text != "" && !p.Thought {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, sep)
}
