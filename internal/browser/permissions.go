package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Первый слой: до навигации подменяем getUserMedia заглушкой, которая сразу
// отдает фейковые аудио/видео треки с no-op stop. Приложение считает, что
// доступ к устройствам уже выдан.
const mediaStubScript = `(() => {
	const makeTrack = (kind) => ({
		kind,
		enabled: true,
		readyState: 'live',
		stop: () => {},
		addEventListener: () => {},
		removeEventListener: () => {},
	});
	const makeStream = () => {
		const audio = makeTrack('audio');
		const video = makeTrack('video');
		return {
			active: true,
			getTracks: () => [audio, video],
			getAudioTracks: () => [audio],
			getVideoTracks: () => [video],
			addEventListener: () => {},
			removeEventListener: () => {},
		};
	};
	if (navigator.mediaDevices) {
		navigator.mediaDevices.getUserMedia = () => Promise.resolve(makeStream());
	}
})();`

// Второй слой: после навигации приложение могло переустановить getUserMedia.
// Оборачиваем текущую точку входа так, чтобы любой вызов прозрачно запрашивал
// и аудио, и видео. Перекрывает форму первого слоя.
const mediaUpgradeScript = `(() => {
	if (!navigator.mediaDevices || !navigator.mediaDevices.getUserMedia) {
		return;
	}
	const original = navigator.mediaDevices.getUserMedia.bind(navigator.mediaDevices);
	navigator.mediaDevices.getUserMedia = (constraints) =>
		original(Object.assign({}, constraints, { audio: true, video: true }));
})();`

// InstallMediaStub ставит заглушку медиа-устройств. Вызывать строго до Navigate.
func (b *PlaywrightBrowser) InstallMediaStub() error {
	page := b.getPage()
	if page == nil {
		return fmt.Errorf("браузер не запущен")
	}

	return page.AddInitScript(playwright.Script{
		Content: playwright.String(mediaStubScript),
	})
}

// UpgradeMediaCalls дооборачивает getUserMedia после навигации. Best-effort:
// более глубокую энумерацию устройств приложением не перехватываем.
func (b *PlaywrightBrowser) UpgradeMediaCalls(ctx context.Context) error {
	page := b.getPage()
	if page == nil {
		return fmt.Errorf("браузер не запущен")
	}

	_, err := page.Evaluate(mediaUpgradeScript)
	return err
}
