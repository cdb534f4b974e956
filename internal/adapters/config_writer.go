package adapters

import (
	"encoding/json"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/delexi/ensime/internal/types"
)

// ConfigWriter serializes a resolved ExternalConfig for consumers that
// read it off the CLI rather than through the Go API.
type ConfigWriter struct{}

func NewConfigWriter() ConfigWriter {
	return ConfigWriter{}
}

func (ConfigWriter) WriteYAML(w io.Writer, cfg types.ExternalConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode config as YAML").
			WithCause(err)
	}
	return enc.Close()
}

func (ConfigWriter) WriteJSON(w io.Writer, cfg types.ExternalConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode config as JSON").
			WithCause(err)
	}
	return nil
}
