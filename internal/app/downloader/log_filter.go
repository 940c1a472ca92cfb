package downloader

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// LogFilter is a line-oriented io.Writer that tidies yt-dlp output for the
// operator: per-file download percentage spam is dropped, duration estimation
// is collapsed to a single notice, and audio extraction is announced once.
type LogFilter struct {
	out                 io.Writer
	buf                 bytes.Buffer
	extractingAnnounced bool
}

func NewLogFilter(out io.Writer) *LogFilter {
	return &LogFilter{out: out}
}

func (f *LogFilter) Write(p []byte) (int, error) {
	f.buf.Write(p)
	for {
		line, err := f.buf.ReadString('\n')
		if err != nil {
			// keep the partial line buffered until the next write
			f.buf.WriteString(line)
			break
		}
		f.emit(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

func (f *LogFilter) emit(line string) {
	switch {
	case strings.HasPrefix(strings.TrimSpace(line), "[download]") && strings.Contains(line, "%"):
		return
	case strings.Contains(line, "Estimating duration from bitrate"):
		fmt.Fprintln(f.out, "[info] Estimating duration…")
		return
	case strings.HasPrefix(line, "[ExtractAudio]"):
		if !f.extractingAnnounced {
			fmt.Fprintln(f.out, "[info] Extracting…")
			f.extractingAnnounced = true
		}
		fmt.Fprintln(f.out, line)
		return
	default:
		fmt.Fprintln(f.out, line)
	}
}

// Flush writes out any trailing partial line.
func (f *LogFilter) Flush() {
	if f.buf.Len() > 0 {
		f.emit(f.buf.String())
		f.buf.Reset()
	}
}
