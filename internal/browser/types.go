package browser

import (
	"context"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

type Browser interface {
	Launch(ctx context.Context) error
	Navigate(ctx context.Context, url string) error
	Find(ctx context.Context, query ElementQuery) *Element
	ClickElement(ctx context.Context, el *Element) error
	TypeInto(ctx context.Context, el *Element, text string) error
	InstallMediaStub() error
	UpgradeMediaCalls(ctx context.Context) error
	Page() playwright.Page
	Close() error
}

// Element — найденный на странице элемент. Нулевое значение означает
// "элемент присутствует, но хэндл недоступен" и примитивами отвергается.
type Element struct {
	handle playwright.ElementHandle
}

type PlaywrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	cfg     Config
	mu      sync.RWMutex
}

type Config struct {
	Headless        bool
	BrowsersPath    string
	Display         string
	Timeout         time.Duration
	NavigateTimeout time.Duration
	ProbeTimeout    time.Duration
	ViewportWidth   int
	ViewportHeight  int
}
