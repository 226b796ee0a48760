// Package recorder пишет содержимое страницы в MP4: кадры screencast из
// CDP-сессии передаются дочернему процессу ffmpeg через stdin.
package recorder

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/playwright-community/playwright-go"
)

type Status string

const (
	StatusIdle      Status = "IDLE"
	StatusRecording Status = "RECORDING"
	StatusFinalized Status = "FINALIZED"
)

// ScreenRecorder привязан к одной странице и одному выходному файлу.
// Переходы Idle → Recording → Finalized выполняются строго по одному разу.
type ScreenRecorder struct {
	opts Options

	mu         sync.Mutex
	status     Status
	page       playwright.Page
	session    playwright.CDPSession
	ffmpeg     *exec.Cmd
	stdin      io.WriteCloser
	outputPath string
}

func New(page playwright.Page, opts Options) *ScreenRecorder {
	return &ScreenRecorder{
		opts:   opts.withDefaults(),
		status: StatusIdle,
		page:   page,
	}
}

func (r *ScreenRecorder) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Start запускает ffmpeg и screencast. Вызывается после того, как страница
// доведена до нужного состояния — порядок обеспечивает вызывающая сторона.
func (r *ScreenRecorder) Start(ctx context.Context, outputPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusIdle {
		return fmt.Errorf("рекордер уже запускался (статус %s)", r.status)
	}
	if r.page == nil {
		return fmt.Errorf("рекордер не привязан к странице")
	}

	cmd := exec.Command("ffmpeg", r.opts.ffmpegArgs(outputPath)...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin ffmpeg: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("запуск ffmpeg: %w", err)
	}

	session, err := r.page.Context().NewCDPSession(r.page)
	if err != nil {
		_ = stdin.Close()
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("CDP-сессия: %w", err)
	}

	r.ffmpeg = cmd
	r.stdin = stdin
	r.session = session
	r.outputPath = outputPath

	session.On("Page.screencastFrame", func(params map[string]interface{}) {
		r.writeFrame(session, params)
	})

	if err := r.startScreencast(session); err != nil {
		r.session = nil
		_ = stdin.Close()
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return err
	}

	if r.opts.FollowNewTab {
		// Контекст может открыть новую вкладку; переносим захват на нее
		r.page.Context().On("page", func(p playwright.Page) {
			r.followPage(p)
		})
	}

	r.status = StatusRecording
	return nil
}

func (r *ScreenRecorder) startScreencast(session playwright.CDPSession) error {
	_, err := session.Send("Page.startScreencast", map[string]interface{}{
		"format":        "jpeg",
		"quality":       90,
		"maxWidth":      r.opts.Width,
		"maxHeight":     r.opts.Height,
		"everyNthFrame": 1,
	})
	if err != nil {
		return fmt.Errorf("старт screencast: %w", err)
	}
	return nil
}

func (r *ScreenRecorder) writeFrame(session playwright.CDPSession, params map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusRecording {
		return
	}

	data, ok := params["data"].(string)
	if ok {
		if frame, err := base64.StdEncoding.DecodeString(data); err == nil {
			_, _ = r.stdin.Write(frame)
		}
	}

	// Без подтверждения браузер перестает слать кадры
	_, _ = session.Send("Page.screencastFrameAck", map[string]interface{}{
		"sessionId": params["sessionId"],
	})
}

// followPage переносит screencast на новую вкладку того же контекста
func (r *ScreenRecorder) followPage(page playwright.Page) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusRecording || page == nil {
		return
	}

	if r.session != nil {
		_, _ = r.session.Send("Page.stopScreencast", nil)
		_ = r.session.Detach()
	}

	session, err := page.Context().NewCDPSession(page)
	if err != nil {
		r.session = nil
		return
	}
	session.On("Page.screencastFrame", func(params map[string]interface{}) {
		r.writeFrame(session, params)
	})
	if err := r.startScreencast(session); err != nil {
		_ = session.Detach()
		r.session = nil
		return
	}

	r.page = page
	r.session = session
}

// Stop останавливает screencast, закрывает stdin и дожидается, пока ffmpeg
// дописывает файл. Ровно один раз на успешный Start; повторный вызов — ошибка.
func (r *ScreenRecorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.status {
	case StatusIdle:
		return fmt.Errorf("рекордер не запускался")
	case StatusFinalized:
		return fmt.Errorf("запись уже финализирована")
	}

	r.status = StatusFinalized

	if r.session != nil {
		_, _ = r.session.Send("Page.stopScreencast", nil)
		_ = r.session.Detach()
		r.session = nil
	}

	var firstErr error
	if err := r.stdin.Close(); err != nil {
		firstErr = fmt.Errorf("закрытие stdin ffmpeg: %w", err)
	}
	if err := r.ffmpeg.Wait(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("финализация %s: %w", r.outputPath, err)
	}
	return firstErr
}
