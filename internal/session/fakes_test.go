package session

import (
	"context"
	"errors"
	"sync"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"meetRecorder/internal/browser"
	"meetRecorder/internal/logger"
)

func nopLogger() *logger.Zap {
	return &logger.Zap{Logger: zap.NewNop()}
}

// fakeBrowser реализует browser.Browser поверх карты "селектор → присутствует"
type fakeBrowser struct {
	mu sync.Mutex

	launchErr   error
	navigateErr error
	clickErr    error
	typeErr     error

	present map[string]bool
	// селектор последнего найденного элемента: фейковые примитивы
	// сопоставляют по нему действие с шагом
	lastFound string

	launchCalls  int
	stubCalls    int
	upgradeCalls int
	closeCalls   int
	navigatedTo  []string
	clicked      []string
	typed        []string
}

func (f *fakeBrowser) Launch(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.launchCalls++
	return f.launchErr
}

func (f *fakeBrowser) Navigate(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.navigateErr != nil {
		return f.navigateErr
	}
	f.navigatedTo = append(f.navigatedTo, url)
	return nil
}

func (f *fakeBrowser) Find(ctx context.Context, query browser.ElementQuery) *browser.Element {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.present[query.Selector()] {
		f.lastFound = query.Selector()
		return &browser.Element{}
	}
	return nil
}

func (f *fakeBrowser) ClickElement(ctx context.Context, el *browser.Element) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if el == nil {
		return browser.ErrElementMissing
	}
	if f.clickErr != nil {
		return f.clickErr
	}
	f.clicked = append(f.clicked, f.lastFound)
	return nil
}

func (f *fakeBrowser) TypeInto(ctx context.Context, el *browser.Element, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if el == nil {
		return browser.ErrElementMissing
	}
	if f.typeErr != nil {
		return f.typeErr
	}
	f.typed = append(f.typed, text)
	return nil
}

func (f *fakeBrowser) InstallMediaStub() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stubCalls++
	return nil
}

func (f *fakeBrowser) UpgradeMediaCalls(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upgradeCalls++
	return nil
}

func (f *fakeBrowser) Page() playwright.Page {
	return nil
}

func (f *fakeBrowser) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCalls++
	return nil
}

type fakeRecorder struct {
	mu         sync.Mutex
	startErr   error
	stopErr    error
	startCalls int
	stopCalls  int
}

func (r *fakeRecorder) Start(ctx context.Context, outputPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startCalls++
	return r.startErr
}

func (r *fakeRecorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopCalls++
	return r.stopErr
}

var errBoom = errors.New("boom")
