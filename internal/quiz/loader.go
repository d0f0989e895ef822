package quiz

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".xml":
		return FormatXML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// Load reads and validates a quiz definition. Every failure is a *LoadError.
func Load(path string) (*Quiz, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, &LoadError{Path: path, Reason: "unsupported file extension (want .yaml, .yml, .xml or .json)"}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "read definition", Err: err}
	}
	q, err := Parse(b, format)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return q, nil
}

func Parse(data []byte, format Format) (*Quiz, error) {
	var q Quiz
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &q)
	case FormatXML:
		err = xml.Unmarshal(data, &q)
	case FormatJSON:
		err = json.Unmarshal(data, &q)
	default:
		return nil, &LoadError{Reason: "unknown format " + string(format)}
	}
	if err != nil {
		return nil, &LoadError{Reason: "decode " + string(format), Err: err}
	}
	q.trim()
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

func (q *Quiz) trim() {
	q.Name = strings.TrimSpace(q.Name)
	for i := range q.Categories {
		q.Categories[i].Name = strings.TrimSpace(q.Categories[i].Name)
		for j := range q.Categories[i].Clues {
			q.Categories[i].Clues[j].Text = strings.TrimSpace(q.Categories[i].Clues[j].Text)
		}
	}
}
