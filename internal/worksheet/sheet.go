package worksheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format identifies a worksheet encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Sheet is a decoded worksheet. Quantity entries stay loosely typed until
// evaluation so every encoding shares one resolver.
type Sheet struct {
	Quantities map[string]any `yaml:"quantities" toml:"quantities" json:"quantities"`
	Steps      []Step         `yaml:"steps" toml:"steps" json:"steps"`
}

// Step applies Op to A (and B for binary operations) and stores the result
// under Name.
type Step struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Op   string `yaml:"op" toml:"op" json:"op"`
	A    any    `yaml:"a" toml:"a" json:"a"`
	B    any    `yaml:"b,omitempty" toml:"b,omitempty" json:"b,omitempty"`
}

// ParseFormat accepts a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported worksheet format %q", s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer worksheet format from %q", path)
	}
	return ParseFormat(ext)
}

// FormatFromContentType maps an HTTP Content-Type; anything unrecognized is JSON.
func FormatFromContentType(contentType string) Format {
	mediaType, _, _ := strings.Cut(strings.ToLower(contentType), ";")
	switch strings.TrimSpace(mediaType) {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML
	case "application/toml", "text/toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Decode parses a worksheet in the given format.
func Decode(data []byte, format Format) (*Sheet, error) {
	var sheet Sheet
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &sheet)
	case FormatTOML:
		err = toml.Unmarshal(data, &sheet)
	case FormatJSON:
		err = sonic.Unmarshal(data, &sheet)
	default:
		return nil, fmt.Errorf("unsupported worksheet format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s worksheet: %w", format, err)
	}
	return &sheet, nil
}
