package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// errorDoc is the uniform request-failure answer: always on stdout,
// always with exit code 0, never mixed with partial results.
type errorDoc struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// readDocument loads a problem document from path ("-" or empty means
// stdin) and decodes it into v. JSON is tried first; anything that is not
// valid JSON is re-interpreted as YAML and routed through a generic
// decode → JSON re-encode, so the JSON struct tags stay the single source
// of field naming.
func readDocument(path string, v interface{}) error {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read problem document: %w", err)
	}

	if jsonErr := json.Unmarshal(data, v); jsonErr == nil {
		return nil
	}

	var generic interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("document is neither valid JSON nor YAML: %w", err)
	}
	bridged, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("convert YAML document: %w", err)
	}
	if err := json.Unmarshal(bridged, v); err != nil {
		return fmt.Errorf("decode problem document: %w", err)
	}

	return nil
}

// emit prints v as an indented JSON document on stdout.
func emit(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// emitError converts a request-level failure into the error document.
func emitError(err error) error {
	logger.Debug("request failed", zap.Error(err))

	return emit(errorDoc{Status: "error", Message: err.Error()})
}
