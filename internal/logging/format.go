package logging

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/backmassage/phonesub/internal/term"
)

const (
	tagField   = "tag"
	tagSuccess = "SUCCESS"
	timeLayout = "2006-01-02 15:04:05"
)

// lineFormatter renders "2006-01-02 15:04:05 [LEVEL] message".
type lineFormatter struct {
	color bool
}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	tag := levelTag(e)
	label := "[" + tag + "]"
	if f.color {
		label = tagColor(tag).Sprint(label)
	}
	var b bytes.Buffer
	b.WriteString(e.Time.Format(timeLayout))
	b.WriteByte(' ')
	b.WriteString(label)
	b.WriteByte(' ')
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelTag(e *logrus.Entry) string {
	if t, ok := e.Data[tagField].(string); ok && t != "" {
		return t
	}
	switch e.Level {
	case logrus.WarnLevel:
		return "WARN"
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return "ERROR"
	default:
		return strings.ToUpper(e.Level.String())
	}
}

func tagColor(tag string) *color.Color {
	switch tag {
	case tagSuccess:
		return term.Green
	case "WARN":
		return term.Yellow
	case "ERROR":
		return term.Red
	case "DEBUG", "TRACE":
		return term.Cyan
	default:
		return term.Blue
	}
}

// writerHook writes entries of the given levels to w with its own formatter.
type writerHook struct {
	w         io.Writer
	formatter logrus.Formatter
	levels    []logrus.Level
}

func (h *writerHook) Levels() []logrus.Level { return h.levels }

func (h *writerHook) Fire(e *logrus.Entry) error {
	b, err := h.formatter.Format(e)
	if err != nil {
		return err
	}
	_, err = h.w.Write(b)
	return err
}
