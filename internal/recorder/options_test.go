package recorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()

	assert.Equal(t, 25, o.FPS)
	assert.Equal(t, 1920, o.Width)
	assert.Equal(t, 1080, o.Height)
	assert.Equal(t, "libx264", o.Codec)
	assert.Equal(t, "ultrafast", o.Preset)
	assert.Equal(t, "black", o.AutopadColor)
	assert.Equal(t, "16:9", o.AspectRatio)
	assert.False(t, o.FollowNewTab)
}

func TestOptionsDefaultsKeepExplicitValues(t *testing.T) {
	o := Options{FPS: 60, Codec: "libx265", AutopadColor: "gray"}.withDefaults()

	assert.Equal(t, 60, o.FPS)
	assert.Equal(t, "libx265", o.Codec)
	assert.Equal(t, "gray", o.AutopadColor)
}

func TestFFmpegArgs(t *testing.T) {
	o := Options{
		FPS:          25,
		Width:        1280,
		Height:       720,
		Codec:        "libx264",
		Preset:       "veryfast",
		CRF:          20,
		BitrateKbps:  1500,
		AutopadColor: "black",
		AspectRatio:  "16:9",
	}

	args := o.ffmpegArgs("report/video/meet_recording_1.mp4")

	assert.Contains(t, args, "image2pipe")
	assert.Contains(t, args, "mjpeg")
	assert.Contains(t, args, "libx264")
	assert.Contains(t, args, "veryfast")
	assert.Contains(t, args, "1500k")
	assert.Contains(t, args, "16:9")
	assert.Equal(t, "report/video/meet_recording_1.mp4", args[len(args)-1], "выходной файл идет последним")

	// Леттербокс с цветом и целевым размером в видеофильтре
	var filter string
	for i, a := range args {
		if a == "-vf" {
			filter = args[i+1]
		}
	}
	assert.Contains(t, filter, "1280:720")
	assert.Contains(t, filter, "color=black")
}
