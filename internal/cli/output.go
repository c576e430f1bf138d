package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")

func outputFormat(name string) (string, error) {
	switch name {
	case formatText, formatJSON, formatYAML:
		return name, nil
	}
	return "", fmt.Errorf("%w %q (want text, json or yaml)", errUnknownFormat, name)
}

// render writes v in the given format followed by a newline. Text uses the
// value's String method, so all formats print the bare number.
func render(w io.Writer, format string, v any) error {
	switch format {
	case formatText:
		_, err := fmt.Fprintln(w, v)
		return err
	case formatJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	_, err := outputFormat(format)
	return err
}
