// Package session содержит оркестрацию задачи записи: вход в конференцию
// и координацию жизненного цикла рекордера над одной браузерной сессией.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"meetRecorder/internal/browser"
	"meetRecorder/internal/logger"
)

type State string

const (
	StateIdle       State = "IDLE"
	StateLaunching  State = "LAUNCHING"
	StateNavigating State = "NAVIGATING"
	StateRecording  State = "RECORDING"
	StateStopping   State = "STOPPING"
	StateClosed     State = "CLOSED"
	StateFailed     State = "FAILED"
)

// Recorder — узкий контракт внешнего сервиса захвата
type Recorder interface {
	Start(ctx context.Context, outputPath string) error
	Stop() error
}

// RecorderFactory создает рекордер, привязанный к странице сессии
type RecorderFactory func(page playwright.Page) Recorder

// Orchestrator — единственный владелец браузерной сессии задачи.
// Один последовательный поток управления; параллельные задачи требуют
// отдельных оркестраторов с отдельными браузерами.
type Orchestrator struct {
	br          browser.Browser
	newRecorder RecorderFactory
	log         *logger.Zap
	botName     string

	mu         sync.Mutex
	state      State
	cancelWait context.CancelFunc
}

func New(br browser.Browser, factory RecorderFactory, log *logger.Zap, botName string) *Orchestrator {
	return &Orchestrator{
		br:          br,
		newRecorder: factory,
		log:         log,
		botName:     botName,
		state:       StateIdle,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// StartRecording проводит задачу через Launching → Navigating → Recording →
// Stopping → Closed. Из любого состояния возможен переход в Failed, но
// очистка выполняется всегда и в фиксированном порядке: сначала останов
// рекордера (если он был запущен), затем закрытие браузера. Сбой одного
// шага очистки не отменяет другой.
func (o *Orchestrator) StartRecording(ctx context.Context, job Job) error {
	var (
		rec        Recorder
		recStarted bool
	)

	runErr := o.run(ctx, job, &rec, &recStarted)

	if recStarted {
		if stopErr := rec.Stop(); stopErr != nil {
			o.log.Error("остановка рекордера при очистке", zap.Error(stopErr))
		}
	}
	if closeErr := o.br.Close(); closeErr != nil {
		o.log.Error("закрытие браузера", zap.Error(closeErr))
		if runErr == nil {
			runErr = fmt.Errorf("закрытие браузера: %w", closeErr)
		}
	}

	if runErr != nil {
		o.setState(StateFailed)
		return runErr
	}

	o.setState(StateClosed)
	return nil
}

func (o *Orchestrator) run(ctx context.Context, job Job, rec *Recorder, recStarted *bool) error {
	o.setState(StateLaunching)
	if err := o.br.Launch(ctx); err != nil {
		return fmt.Errorf("запуск браузера: %w", err)
	}

	// Первый слой подмены разрешений — до любой навигации
	if err := o.br.InstallMediaStub(); err != nil {
		return fmt.Errorf("установка медиа-заглушки: %w", err)
	}

	o.setState(StateNavigating)
	o.log.Info("Переход к конференции", zap.String("url", job.TargetURL))
	if err := o.br.Navigate(ctx, job.TargetURL); err != nil {
		return fmt.Errorf("навигация: %w", err)
	}

	// Второй слой: приложение могло переустановить getUserMedia
	if err := o.br.UpgradeMediaCalls(ctx); err != nil {
		return fmt.Errorf("обертка медиа-вызовов: %w", err)
	}

	nav := NewNavigator(o.br, o.log, o.botName)
	report, err := nav.JoinSequence(ctx)
	if err != nil {
		return fmt.Errorf("последовательность входа: %w", err)
	}
	o.log.Info("Последовательность входа завершена",
		zap.Bool("dismissed_device_prompt", report.DismissedDevicePrompt),
		zap.Bool("entered_name", report.EnteredName),
		zap.Bool("asked_to_join", report.AskedToJoin),
	)

	o.setState(StateRecording)
	*rec = o.newRecorder(o.br.Page())
	if err := (*rec).Start(ctx, job.OutputPath); err != nil {
		// Start не дал активного хэндла — Stop не вызывается
		return fmt.Errorf("старт рекордера: %w", err)
	}
	*recStarted = true

	o.log.Info("Запись началась", zap.Duration("duration", job.Duration))
	o.waitRecording(ctx, job.Duration)

	o.setState(StateStopping)
	stopErr := (*rec).Stop()
	*recStarted = false
	if stopErr != nil {
		return fmt.Errorf("остановка рекордера: %w", stopErr)
	}

	return nil
}

// waitRecording — фиксированная пауза на длительность записи. Таймер
// обернут в отменяемый контекст, чтобы будущий детектор конца встречи
// мог прервать ожидание без перестройки; базовый сценарий ждет до конца.
func (o *Orchestrator) waitRecording(ctx context.Context, d time.Duration) {
	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	o.mu.Lock()
	o.cancelWait = cancel
	o.mu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-waitCtx.Done():
	}

	o.mu.Lock()
	o.cancelWait = nil
	o.mu.Unlock()
}

// StopEarly прерывает паузу записи, если она идет. Переводит задачу к
// штатной остановке рекордера, а не к ошибке.
func (o *Orchestrator) StopEarly() {
	o.mu.Lock()
	cancel := o.cancelWait
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
