package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorByText(t *testing.T) {
	assert.Equal(t, `span:has-text("Ask to join")`, ByText("span", "Ask to join").Selector())
}

func TestSelectorByTextEscapesQuotes(t *testing.T) {
	assert.Equal(t, `button:has-text("say \"hi\"")`, ByText("button", `say "hi"`).Selector())
}

func TestSelectorDefaultsToAnyTag(t *testing.T) {
	assert.Equal(t, `*:has-text("x")`, ElementQuery{Text: "x"}.Selector())
}

func TestSelectorWithoutTextIsTagOnly(t *testing.T) {
	assert.Equal(t, "input", ElementQuery{Tag: "input"}.Selector())
}

func TestSelectorCSSTakesPriority(t *testing.T) {
	q := ElementQuery{Tag: "span", Text: "x", CSS: "input[aria-label='Your name']"}
	assert.Equal(t, "input[aria-label='Your name']", q.Selector())
}

func TestValidateSelector(t *testing.T) {
	assert.NoError(t, ValidateSelector("button.join"))
	assert.Error(t, ValidateSelector(""))
	assert.Error(t, ValidateSelector("https://meet.example/x"))
}
