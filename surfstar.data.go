package surfstar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsatony/go-cuserr"
	"gopkg.in/yaml.v3"
)

// DataFormat identifies the encoding of a data document
type DataFormat string

// DataFormatForPath picks a format by file extension: .yaml and .yml are
// YAML, everything else is JSON.
func DataFormatForPath(path string) DataFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYAML, ExtYML:
		return DataFormatYAML
	default:
		return DataFormatJSON
	}
}

// ParseDataFormat resolves a format name such as "json" or "yaml"
func ParseDataFormat(name string) (DataFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(DataFormatJSON):
		return DataFormatJSON, nil
	case string(DataFormatYAML), strings.TrimPrefix(ExtYML, "."):
		return DataFormatYAML, nil
	default:
		return "", cuserr.NewValidationError(ErrCodeData, ErrMsgUnknownDataFormat).
			WithMetadata(MetaKeyFormat, name)
	}
}

// DecodeData decodes a JSON or YAML document into a data context.
// An empty document yields an empty context; a document whose top level is
// not a mapping is an error. JSON numbers keep their literal form.
func DecodeData(data []byte, format DataFormat) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var doc any
	switch format {
	case DataFormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, newDataError(ErrMsgDataDecodeFailed, format, err)
		}
	case DataFormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, newDataError(ErrMsgDataDecodeFailed, format, err)
		}
	default:
		return nil, cuserr.NewValidationError(ErrCodeData, ErrMsgUnknownDataFormat).
			WithMetadata(MetaKeyFormat, string(format))
	}

	mapping, ok := normalizeData(doc).(map[string]any)
	if !ok {
		return nil, newDataError(ErrMsgDataNotMapping, format, nil)
	}
	return mapping, nil
}

// LoadData reads a data document, choosing the format by extension
func LoadData(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeData, ErrMsgDataReadFailed).
			WithMetadata(MetaKeyFile, path)
	}
	return DecodeData(raw, DataFormatForPath(path))
}

// normalizeData rewrites YAML's non-string-keyed mappings to map[string]any
func normalizeData(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeData(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeData(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeData(val)
		}
		return t
	default:
		return v
	}
}

func newDataError(msg string, format DataFormat, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeData, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeData, msg)
	}
	return err.WithMetadata(MetaKeyFormat, string(format))
}
