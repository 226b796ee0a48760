package session

import (
	"fmt"
	"path/filepath"
	"time"
)

// Job — одна задача "войти и записать". Неизменяема после создания.
type Job struct {
	TargetURL  string
	Duration   time.Duration
	OutputPath string
}

// NewJob выводит путь результата из каталога и метки времени создания.
// Уникальность в пределах процесса держится на метке времени; при совпадении
// секунды создания пути совпадут — известное ограничение, не устраняем.
func NewJob(targetURL string, duration time.Duration, outputDir string) Job {
	return newJobAt(targetURL, duration, outputDir, time.Now())
}

func newJobAt(targetURL string, duration time.Duration, outputDir string, now time.Time) Job {
	return Job{
		TargetURL:  targetURL,
		Duration:   duration,
		OutputPath: filepath.Join(outputDir, fmt.Sprintf("meet_recording_%d.mp4", now.Unix())),
	}
}
