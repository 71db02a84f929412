package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/smtpcreds/pkg/smtppass"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validOutput(format string) bool {
	switch format {
	case outputText, outputJSON, outputYAML:
		return true
	}
	return false
}

// render writes creds to w. Text output is the bare password.
func render(w io.Writer, format string, creds smtppass.Credentials) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(creds)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(creds); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, creds.Password)
		return err
	}
}
