package catalogue

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
)

// Format is the encoding of a catalogue document
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed data/orks.json
var defaultDocument []byte

// Default returns the embedded Orks catalogue
func Default() (Catalogue, error) {
	c, err := Load(bytes.NewReader(defaultDocument), FormatJSON)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load embedded catalogue")
	}
	return c, nil
}

// LoadFile loads a catalogue from disk, picking the format from the extension
func LoadFile(path string) (Catalogue, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, errors.InvalidArgumentf("unsupported catalogue extension %q", filepath.Ext(path))
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalogue file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open catalogue %s", path)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalogue %s", path)
	}

	slog.Info("Loaded catalogue",
		"path", path,
		"faction", c.Faction(),
		"units", len(c.ListUnits()),
		"detachments", len(c.ListDetachments()))

	return c, nil
}

// Load decodes and indexes a catalogue document
func Load(r io.Reader, format Format) (Catalogue, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalogue")
	}

	if format == FormatYAML {
		raw, err = yamlToJSON(raw)
		if err != nil {
			return nil, err
		}
	} else if format != FormatJSON {
		return nil, errors.InvalidArgumentf("unsupported catalogue format %q", format)
	}

	var data wh40k.CatalogueData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalogue")
	}

	return New(&data)
}

// yamlToJSON lets YAML documents share the JSON field names and the custom
// model scope decoding.
func yamlToJSON(raw []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode yaml catalogue")
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "yaml catalogue is not representable as json")
	}
	return out, nil
}
