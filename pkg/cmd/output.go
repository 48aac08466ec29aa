package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/c9s/gemini/pkg/style"
)

type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatTable, nil
	}

	return "", fmt.Errorf("invalid output format %q, valid formats are: table, json, yaml", s)
}

// tableRenderer fills the table for the table output format.
type tableRenderer func(t table.Writer)

// render writes v in the requested format, fillTable is only used by the table format.
// A nil fillTable falls back to json.
func render(w io.Writer, format OutputFormat, v interface{}, fillTable tableRenderer) error {
	switch format {
	case OutputFormatJSON:
		return writeJSON(w, v)

	case OutputFormatYAML:
		return writeYAML(w, v)

	case OutputFormatTable:
		if fillTable == nil {
			return writeJSON(w, v)
		}

		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(*style.NewDefaultTableStyle(isTerminal(w)))
		fillTable(t)
		t.Render()
		return nil
	}

	return fmt.Errorf("unsupported output format %q", format)
}

func writeJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to encode json output")
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writeYAML goes through json first so the yaml keys follow the api field names.
func writeYAML(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "unable to encode yaml output")
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(generic); err != nil {
		return errors.Wrap(err, "unable to encode yaml output")
	}

	return encoder.Close()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func outputFormat() (OutputFormat, error) {
	return ParseOutputFormat(viper.GetString("output"))
}
