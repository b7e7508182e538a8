package logger

import (
	"io"
	"path/filepath"
	"sync"

	"github.com/mattn/go-colorable"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggerWriter     io.WriteCloser
	loggerWriterOnce sync.Once
)

// SetWriter returns the log destination: the terminal when console is set,
// plus a rotated file at path when path is not empty. With neither, stdout.
// The file writer is created once per process.
func SetWriter(console bool, path string) io.Writer {
	var writerList []io.Writer
	if console || path == "" {
		writerList = append(writerList, colorable.NewColorableStdout())
		if path == "" {
			return io.MultiWriter(writerList...)
		}
	}
	loggerWriterOnce.Do(func() {
		loggerWriter = &lumberjack.Logger{
			Filename:   filepath.Clean(path),
			MaxBackups: 30,  // files
			MaxSize:    500, // megabytes
			MaxAge:     30,  // days
			Compress:   true,
		}
	})
	writerList = append(writerList, loggerWriter)
	return io.MultiWriter(writerList...)
}

// CloseWriter closes the file writer created by SetWriter, if any.
func CloseWriter() error {
	if loggerWriter == nil {
		return nil
	}
	return loggerWriter.Close()
}
