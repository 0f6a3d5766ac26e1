package xlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/hostsmith/hostsmith/config"
)

func NewConsoleWriter(f io.Writer) zerolog.LevelWriter {
	if file, ok := f.(*os.File); ok && term.IsTerminal(int(file.Fd())) && !*config.Dumb {
		consoleWriter := &zerolog.ConsoleWriter{
			Out: f,
			FormatTimestamp: func(i any) string {
				ms, _ := i.(json.Number)
				msi, _ := ms.Int64()
				if msi == 0 {
					return ""
				}
				ts := time.UnixMilli(msi)
				if now := time.Now(); ts.YearDay() != now.YearDay() || ts.Year() != now.Year() {
					return ts.Format("01-02 15:04:05")
				}
				return ts.Format(time.Kitchen)
			},
			FormatCaller: func(i any) string {
				n, ok := i.(string)
				if !ok {
					return ""
				}
				return fmt.Sprintf("│ \x1b[1m%s\x1b[0m", n)
			},
			FieldsExclude: []string{zerolog.ErrorStackFieldName},
		}
		return zerolog.LevelWriterAdapter{Writer: consoleWriter}
	}
	return zerolog.LevelWriterAdapter{Writer: f}
}
func StdoutWriter() zerolog.LevelWriter { return NewConsoleWriter(os.Stdout) }
func StderrWriter() zerolog.LevelWriter { return NewConsoleWriter(os.Stderr) }
