package llm

import (
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

var (
	encodingForModel = tiktoken.EncodingForModel
	getEncoding      = tiktoken.GetEncoding
)

// EstimateTokens counts tokens in text with the model's tokenizer. Models
// tiktoken does not know use cl100k_base, and if no encoding can be loaded
// the count falls back to a quarter of the rune count.
func EstimateTokens(model, text string) int {
	if text == "" {
		return 0
	}

	enc, err := encodingForModel(model)
	if err != nil {
		enc, err = getEncoding(fallbackEncoding)
	}
	if err != nil {
		return (utf8.RuneCountInString(text) + 3) / 4
	}
	return len(enc.Encode(text, nil, nil))
}

// fillEstimatedUsage sets usage from the local tokenizer when the backend sent none
func fillEstimatedUsage(resp *Response, prompt string) {
	if resp.TotalTokens > 0 {
		return
	}
	resp.PromptTokens = EstimateTokens(resp.Model, prompt)
	resp.CompletionTokens = EstimateTokens(resp.Model, resp.Text)
	resp.TotalTokens = resp.PromptTokens + resp.CompletionTokens
	resp.UsageEstimated = true
}
