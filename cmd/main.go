package main

import (
	"context"
	"os"

	"meetRecorder/internal/browser"
	"meetRecorder/internal/config"
	"meetRecorder/internal/database"
	"meetRecorder/internal/logger"
	"meetRecorder/internal/migrations"
	"meetRecorder/internal/recorder"
	"meetRecorder/internal/server"
	"meetRecorder/internal/session"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Адрес конференции по умолчанию, если MEETING_URL не задан
const defaultMeetingURL = "https://meet.google.com/abc-defg-hij"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// БД опциональна: без DB_HOST история задач не ведется
	var repo *database.RecordingRepository
	if cfg.Database.Host != "" {
		if err := migrations.Run(cfg, log); err != nil {
			log.Fatal("Ошибка миграций", zap.Error(err))
		}

		db, err := database.New(cfg, log)
		if err != nil {
			log.Fatal("Ошибка подключения к БД", zap.Error(err))
		}
		defer db.Close(log)

		repo = database.NewRecordingRepository(db.DB)
	}

	if cfg.Server.Enabled && repo != nil {
		srv := server.New(cfg, log, repo)
		go func() {
			if err := srv.Run(context.Background()); err != nil {
				log.Error("HTTP сервер", zap.Error(err))
			}
		}()
	}

	if err := os.MkdirAll(cfg.Meeting.OutputDir, 0o755); err != nil {
		log.Fatal("Не удалось создать каталог записей", zap.Error(err))
	}

	meetingURL := cfg.Meeting.URL
	if meetingURL == "" {
		meetingURL = defaultMeetingURL
	}

	br := browser.New(browser.Config{
		Headless:        cfg.Browser.Headless,
		BrowsersPath:    cfg.Browser.BrowsersPath,
		Display:         cfg.Browser.Display,
		NavigateTimeout: cfg.Browser.NavigateTimeout,
	})

	factory := func(page playwright.Page) session.Recorder {
		return recorder.New(page, recorder.Options{
			FPS:          cfg.Recorder.FPS,
			Width:        cfg.Recorder.Width,
			Height:       cfg.Recorder.Height,
			Codec:        cfg.Recorder.Codec,
			Preset:       cfg.Recorder.Preset,
			CRF:          cfg.Recorder.CRF,
			BitrateKbps:  cfg.Recorder.BitrateKbps,
			AutopadColor: cfg.Recorder.AutopadColor,
			AspectRatio:  cfg.Recorder.AspectRatio,
			FollowNewTab: cfg.Recorder.FollowNewTab,
		})
	}

	orch := session.New(br, factory, log, cfg.Meeting.BotName)
	job := session.NewJob(meetingURL, cfg.Meeting.Duration, cfg.Meeting.OutputDir)

	var recID uint
	if repo != nil {
		rec := database.Recording{
			TargetURL:  job.TargetURL,
			OutputPath: job.OutputPath,
			DurationMs: job.Duration.Milliseconds(),
			Status:     "running",
		}
		if err := repo.CreateRecording(&rec); err != nil {
			log.Error("Не удалось сохранить задачу в БД", zap.Error(err))
		} else {
			recID = rec.ID
		}
	}

	log.Info("Запуск записи встречи",
		zap.String("url", job.TargetURL),
		zap.Duration("duration", job.Duration),
		zap.String("output", job.OutputPath),
	)

	// Ошибка задачи логируется, но процесс не падает: это позволяет
	// использовать бота в пакетном безнадзорном режиме
	if err := orch.StartRecording(context.Background(), job); err != nil {
		log.Error("Задача записи завершилась с ошибкой", zap.Error(err))
		if repo != nil && recID != 0 {
			if dbErr := repo.UpdateRecordingStatus(recID, "failed", err.Error()); dbErr != nil {
				log.Error("Не удалось обновить статус задачи", zap.Error(dbErr))
			}
		}
		return
	}

	log.Info("Запись завершена", zap.String("file", job.OutputPath))
	if repo != nil && recID != 0 {
		if dbErr := repo.UpdateRecordingStatus(recID, "completed", ""); dbErr != nil {
			log.Error("Не удалось обновить статус задачи", zap.Error(dbErr))
		}
	}
}
