package main

import (
	"errors"
	"io"
	"os"

	"github.com/itsatony/go-surfstar"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadData decodes an inline JSON string or a JSON/YAML data file.
// With neither given the data context is empty.
func loadData(jsonStr, filePath string) (map[string]any, error) {
	switch {
	case jsonStr != "" && filePath != "":
		return nil, errors.New(ErrMsgConflictingData)
	case filePath != "":
		return surfstar.LoadData(filePath)
	case jsonStr != "":
		return surfstar.DecodeData([]byte(jsonStr), surfstar.DataFormatJSON)
	default:
		return make(map[string]any), nil
	}
}

// newLogger returns a development console logger on w when verbose, else a no-op logger
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core, zap.Development())
}
