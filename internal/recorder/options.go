package recorder

import (
	"fmt"
	"strconv"
)

// Options — конфигурация захвата, фиксируется при создании рекордера.
// Не глобальное состояние: каждый рекордер несет свою копию.
type Options struct {
	FPS          int
	Width        int
	Height       int
	Codec        string
	Preset       string
	CRF          int
	BitrateKbps  int
	AutopadColor string
	AspectRatio  string
	FollowNewTab bool
}

func (o Options) withDefaults() Options {
	if o.FPS == 0 {
		o.FPS = 25
	}
	if o.Width == 0 {
		o.Width = 1920
	}
	if o.Height == 0 {
		o.Height = 1080
	}
	if o.Codec == "" {
		o.Codec = "libx264"
	}
	if o.Preset == "" {
		o.Preset = "ultrafast"
	}
	if o.CRF == 0 {
		o.CRF = 23
	}
	if o.BitrateKbps == 0 {
		o.BitrateKbps = 1000
	}
	if o.AutopadColor == "" {
		o.AutopadColor = "black"
	}
	if o.AspectRatio == "" {
		o.AspectRatio = "16:9"
	}
	return o
}

// ffmpegArgs собирает аргументы кодировщика: кадры mjpeg со stdin,
// масштабирование под целевой размер с леттербоксом цвета AutopadColor.
func (o Options) ffmpegArgs(outputPath string) []string {
	filter := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:color=%s,setsar=1",
		o.Width, o.Height, o.Width, o.Height, o.AutopadColor,
	)

	return []string{
		"-y",
		"-f", "image2pipe",
		"-vcodec", "mjpeg",
		"-use_wallclock_as_timestamps", "1",
		"-i", "-",
		"-c:v", o.Codec,
		"-preset", o.Preset,
		"-crf", strconv.Itoa(o.CRF),
		"-b:v", fmt.Sprintf("%dk", o.BitrateKbps),
		"-vf", filter,
		"-r", strconv.Itoa(o.FPS),
		"-aspect", o.AspectRatio,
		"-pix_fmt", "yuv420p",
		outputPath,
	}
}
