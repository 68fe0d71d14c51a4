package converter

import (
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// spinner wraps a single indeterminate mpb bar shown while the remote call
// is in flight. The zero value is a no-op.
type spinner struct {
	container *mpb.Progress
	bar       *mpb.Bar
}

func startSpinner(config ProgressConfig, message string) *spinner {
	if !config.Enabled {
		return &spinner{}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	bar := container.New(-1,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(decor.Name(message)),
		mpb.AppendDecorators(decor.Elapsed(decor.ET_STYLE_GO)),
		mpb.BarRemoveOnComplete(),
	)

	return &spinner{container: container, bar: bar}
}

// Stop completes the spinner and flushes the container so nothing is left
// on the terminal.
func (s *spinner) Stop() {
	if s.bar != nil {
		s.bar.SetTotal(-1, true)
	}
	if s.container != nil {
		s.container.Wait()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}
