package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playwright-community/playwright-go"
)

func allPromptsBrowser() *fakeBrowser {
	return &fakeBrowser{present: map[string]bool{
		selDevicePrompt: true,
		selNameField:    true,
		selAskToJoin:    true,
	}}
}

func newOrchestrator(fb *fakeBrowser, fr *fakeRecorder) *Orchestrator {
	factory := func(page playwright.Page) Recorder { return fr }
	return New(fb, factory, nopLogger(), "Запись-бот")
}

func testJob(d time.Duration) Job {
	return newJobAt("https://meet.example/abc-defg-hij", d, "report/video", time.Unix(1700000000, 0))
}

func TestStartRecordingSuccess(t *testing.T) {
	fb := allPromptsBrowser()
	fr := &fakeRecorder{}
	orch := newOrchestrator(fb, fr)

	err := orch.StartRecording(context.Background(), testJob(10*time.Millisecond))
	require.NoError(t, err)

	assert.Equal(t, StateClosed, orch.State())
	assert.Equal(t, 1, fb.launchCalls)
	assert.Equal(t, 1, fb.stubCalls)
	assert.Equal(t, 1, fb.upgradeCalls)
	assert.Equal(t, 1, fb.closeCalls, "браузер закрывается ровно один раз")
	assert.Equal(t, 1, fr.startCalls)
	assert.Equal(t, 1, fr.stopCalls, "stop вызывается ровно один раз")
	assert.Equal(t, []string{"https://meet.example/abc-defg-hij"}, fb.navigatedTo)
}

func TestStartRecordingLaunchFailure(t *testing.T) {
	fb := allPromptsBrowser()
	fb.launchErr = errBoom
	fr := &fakeRecorder{}
	orch := newOrchestrator(fb, fr)

	err := orch.StartRecording(context.Background(), testJob(10*time.Millisecond))
	require.Error(t, err)

	assert.Equal(t, StateFailed, orch.State())
	assert.Equal(t, 1, fb.closeCalls, "браузер закрывается даже при сбое запуска")
	assert.Zero(t, fr.startCalls)
	assert.Zero(t, fr.stopCalls)
}

func TestStartRecordingNavigationFailure(t *testing.T) {
	fb := allPromptsBrowser()
	fb.navigateErr = errBoom
	fr := &fakeRecorder{}
	orch := newOrchestrator(fb, fr)

	err := orch.StartRecording(context.Background(), testJob(10*time.Millisecond))
	require.Error(t, err)
	assert.ErrorContains(t, err, "навигация")

	assert.Equal(t, StateFailed, orch.State())
	assert.Equal(t, 1, fb.closeCalls)
	assert.Zero(t, fr.startCalls)
	assert.Zero(t, fr.stopCalls)
}

func TestStartRecordingRecorderStartFailure(t *testing.T) {
	fb := allPromptsBrowser()
	fr := &fakeRecorder{startErr: errBoom}
	orch := newOrchestrator(fb, fr)

	err := orch.StartRecording(context.Background(), testJob(10*time.Millisecond))
	require.Error(t, err)
	assert.ErrorContains(t, err, "старт рекордера")

	assert.Equal(t, StateFailed, orch.State())
	assert.Equal(t, 1, fb.closeCalls, "браузер закрывается даже при сбое рекордера")
	assert.Equal(t, 1, fr.startCalls)
	assert.Zero(t, fr.stopCalls, "stop не вызывается, если start не дал хэндла")
}

func TestStartRecordingStopFailureStillClosesBrowser(t *testing.T) {
	fb := allPromptsBrowser()
	fr := &fakeRecorder{stopErr: errBoom}
	orch := newOrchestrator(fb, fr)

	err := orch.StartRecording(context.Background(), testJob(10*time.Millisecond))
	require.Error(t, err)
	assert.ErrorContains(t, err, "остановка рекордера")

	assert.Equal(t, StateFailed, orch.State())
	assert.Equal(t, 1, fb.closeCalls)
	assert.Equal(t, 1, fr.stopCalls, "повторный stop после неудачного не выполняется")
}

func TestStartRecordingJoinStepFailure(t *testing.T) {
	fb := allPromptsBrowser()
	fb.clickErr = errBoom
	fr := &fakeRecorder{}
	orch := newOrchestrator(fb, fr)

	err := orch.StartRecording(context.Background(), testJob(10*time.Millisecond))
	require.Error(t, err)
	assert.ErrorContains(t, err, "последовательность входа")

	assert.Equal(t, StateFailed, orch.State())
	assert.Equal(t, 1, fb.closeCalls)
	assert.Zero(t, fr.startCalls)
}

func TestStopEarlyInterruptsWait(t *testing.T) {
	fb := allPromptsBrowser()
	fr := &fakeRecorder{}
	orch := newOrchestrator(fb, fr)

	done := make(chan error, 1)
	started := time.Now()
	go func() {
		done <- orch.StartRecording(context.Background(), testJob(5*time.Second))
	}()

	// Дергаем StopEarly, пока задача не дошла до паузы записи
	for {
		select {
		case err := <-done:
			require.NoError(t, err)
			assert.Less(t, time.Since(started), 3*time.Second, "ожидание должно прерваться досрочно")
			assert.Equal(t, StateClosed, orch.State())
			assert.Equal(t, 1, fr.stopCalls)
			return
		case <-time.After(10 * time.Millisecond):
			orch.StopEarly()
		}
	}
}
