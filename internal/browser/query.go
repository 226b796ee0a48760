package browser

import (
	"fmt"
	"strings"
)

// ElementQuery — структурный запрос к DOM: тег/роль плюс подстрока текста.
// Готовый CSS-селектор в поле CSS имеет приоритет над остальными полями.
type ElementQuery struct {
	Tag  string
	Text string
	CSS  string
}

func ByText(tag, text string) ElementQuery {
	return ElementQuery{Tag: tag, Text: text}
}

func BySelector(css string) ElementQuery {
	return ElementQuery{CSS: css}
}

// Selector компилирует запрос в playwright-селектор вида tag:has-text("...")
func (q ElementQuery) Selector() string {
	if q.CSS != "" {
		return q.CSS
	}

	tag := q.Tag
	if tag == "" {
		tag = "*"
	}

	if q.Text == "" {
		return tag
	}

	// Экранируем кавычки в тексте
	text := strings.ReplaceAll(q.Text, `\`, `\\`)
	text = strings.ReplaceAll(text, `"`, `\"`)
	return tag + `:has-text("` + text + `")`
}

func ValidateSelector(selector string) error {
	if selector == "" {
		return fmt.Errorf("селектор не может быть пустым")
	}

	// Проверяем, что селектор не является URL
	selectorTrimmed := strings.TrimSpace(selector)
	if strings.Contains(selectorTrimmed, "://") {
		return fmt.Errorf("селектор не может содержать протокол (://). Получен: %s", selector)
	}

	return nil
}
