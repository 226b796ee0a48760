package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobOutputPathFormat(t *testing.T) {
	now := time.Unix(1700000000, 0)
	job := newJobAt("https://meet.example/x", 30*time.Second, "report/video", now)

	assert.Equal(t, filepath.Join("report", "video", "meet_recording_1700000000.mp4"), job.OutputPath)
	assert.Equal(t, "https://meet.example/x", job.TargetURL)
	assert.Equal(t, 30*time.Second, job.Duration)
}

func TestJobOutputPathUniquePerSecond(t *testing.T) {
	base := time.Unix(1700000000, 0)
	a := newJobAt("u", time.Second, "d", base)
	b := newJobAt("u", time.Second, "d", base.Add(time.Second))

	assert.NotEqual(t, a.OutputPath, b.OutputPath)
}

func TestJobOutputPathCollidesAtSameTimestamp(t *testing.T) {
	// Известное ограничение: внутри одной секунды пути совпадают
	base := time.Unix(1700000000, 0)
	a := newJobAt("u", time.Second, "d", base)
	b := newJobAt("u", time.Second, "d", base.Add(500*time.Millisecond))

	assert.Equal(t, a.OutputPath, b.OutputPath)
}
