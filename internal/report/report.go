// Package report renders checksum results for the terminal and for tools
// that consume structured output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/deploymenttheory/go-checksum/internal/checksum"
	commonerrors "github.com/deploymenttheory/go-checksum/internal/common/errors"
	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

// Format selects how a Summary is written
type Format string

const (
	// FormatText is the single summary line
	FormatText Format = "text"
	// FormatJSON is an indented JSON object
	FormatJSON Format = "json"
	// FormatYAML is a YAML mapping
	FormatYAML Format = "yaml"
	// FormatPlist is an XML property list
	FormatPlist Format = "plist"
)

// ParseFormat converts an output name into a Format
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML, FormatPlist:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s", commonerrors.ErrUnsupportedOutput, name)
	}
}

// Summary is the reportable view of a checksum.Result
type Summary struct {
	File     string `json:"file" yaml:"file" plist:"file"`
	Width    int    `json:"width" yaml:"width" plist:"width"`
	Checksum string `json:"checksum" yaml:"checksum" plist:"checksum"`
	Value    uint32 `json:"value" yaml:"value" plist:"value"`
	Length   int    `json:"length" yaml:"length" plist:"length"`
}

// NewSummary builds a Summary for the file that produced res
func NewSummary(file string, res checksum.Result) Summary {
	return Summary{
		File:     file,
		Width:    int(res.Width),
		Checksum: fmt.Sprintf("%x", res.Value),
		Value:    res.Value,
		Length:   res.Length,
	}
}

// Line formats a result as the classic one-line summary, e.g.
// "16 bit checksum is     a1b2 for all   10 chars".
func Line(res checksum.Result) string {
	return fmt.Sprintf("%2d bit checksum is %8x for all %4d chars", int(res.Width), res.Value, res.Length)
}

// Write encodes s to w in the given format
func Write(w io.Writer, s Summary, format Format) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, Line(checksum.Result{
			Width:  checksum.Width(s.Width),
			Value:  s.Value,
			Length: s.Length,
		}))
		return err

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(s); err != nil {
			return err
		}
		return encoder.Close()

	case FormatPlist:
		encoder := plist.NewEncoderForFormat(w, plist.XMLFormat)
		encoder.Indent("\t")
		if err := encoder.Encode(s); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err

	default:
		return fmt.Errorf("%w: %s", commonerrors.ErrUnsupportedOutput, format)
	}
}
