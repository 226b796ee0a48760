package browser

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// Find ищет элемент по структурному запросу. Отсутствие элемента — не ошибка:
// возвращается nil. При нескольких совпадениях берется первый в порядке DOM.
// Перед ответом "не найден" выполняется короткое ограниченное ожидание,
// чтобы пережить отрисовку элемента после навигации.
func (b *PlaywrightBrowser) Find(ctx context.Context, query ElementQuery) *Element {
	page := b.getPage()
	if page == nil {
		return nil
	}

	selector := query.Selector()
	if err := ValidateSelector(selector); err != nil {
		return nil
	}

	err := page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(b.cfg.ProbeTimeout.Milliseconds())),
	})
	if err != nil {
		return nil
	}

	handle, err := page.QuerySelector(selector)
	if err != nil || handle == nil {
		return nil
	}

	return &Element{handle: handle}
}
