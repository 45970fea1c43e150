// Package cmd - shared command helpers
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"fieldquote/internal/config"
)

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fieldquote.json"
	}
	return filepath.Join(home, ".fieldquote.json")
}

func configJSON() (string, error) {
	data, err := json.MarshalIndent(config.Get(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// money formats an amount for CLI display
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// readJSONFile decodes a JSON input file into out
func readJSONFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// printJSON writes v as indented JSON to stdout
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	os.Stdout.Write(append(data, '\n'))
	return nil
}
