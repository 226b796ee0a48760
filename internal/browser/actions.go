package browser

import (
	"context"
	"errors"
	"fmt"
)

// ErrElementMissing — примитив вызван для отсутствующего элемента.
// Это нарушение контракта вызывающей стороны, шаг завершается фатально.
var ErrElementMissing = errors.New("элемент отсутствует на странице")

// ClickElement выполняет одиночный клик по найденному элементу.
// Без внутренних повторов: результат возвращается как есть.
func (b *PlaywrightBrowser) ClickElement(ctx context.Context, el *Element) error {
	if el == nil || el.handle == nil {
		return fmt.Errorf("click: %w", ErrElementMissing)
	}
	return el.handle.Click()
}

// TypeInto очищает поле (семантика select-all) и вводит text.
func (b *PlaywrightBrowser) TypeInto(ctx context.Context, el *Element, text string) error {
	if el == nil || el.handle == nil {
		return fmt.Errorf("type: %w", ErrElementMissing)
	}
	// Fill сам выделяет и замещает текущее содержимое поля
	return el.handle.Fill(text)
}
