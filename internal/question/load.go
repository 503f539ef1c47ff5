package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a question bank.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrMultipleDocuments indicates a bank file held more than one document.
var ErrMultipleDocuments = errors.New("multiple documents are not supported")

// FormatForPath picks the bank format from a file extension, defaulting to YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadBank reads a question bank file, then decodes and validates it.
func LoadBank(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBank(data, FormatForPath(path))
}

// ParseBank decodes bank data strictly and returns the normalized bank.
func ParseBank(data []byte, format Format) (Bank, error) {
	var (
		bank Bank
		err  error
	)
	switch format {
	case FormatJSON:
		err = decodeJSON(data, &bank)
	case FormatYAML:
		err = decodeYAML(data, &bank)
	default:
		return Bank{}, fmt.Errorf("unsupported bank format %q", format)
	}
	if err != nil {
		return Bank{}, err
	}
	return NormalizeBank(bank)
}

func decodeJSON(data []byte, bank *Bank) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(bank); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse json: %w", ErrMultipleDocuments)
		}
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, bank *Bank) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(bank); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse yaml: %w", ErrMultipleDocuments)
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}
