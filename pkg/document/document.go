package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/yinjianfei/owlapi/pkg/errors"
	"github.com/yinjianfei/owlapi/pkg/model"
)

// Format is the serialization a document is written in
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrDocumentParse, "unsupported document format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Document is a parsed ontology fragment
type Document struct {
	Path     string
	Prefixes *model.PrefixManager
	Objects  []model.Object
}

type rawDocument struct {
	Prefixes map[string]string `yaml:"prefixes" toml:"prefixes"`
	Objects  []interface{}     `yaml:"objects" toml:"objects"`
}

// Load reads and parses the document at path
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentParse, "cannot read document %s", path).
			WithDetail("path", path)
	}

	doc, err := Parse(data, format)
	if err != nil {
		if oe, ok := err.(*errors.OwlError); ok {
			return nil, oe.WithDetail("path", path)
		}
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes data in the given format
func Parse(data []byte, format Format) (*Document, error) {
	var raw rawDocument
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, errors.Newf(errors.ErrDocumentParse, "unsupported document format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentParse, "invalid %s document", format)
	}

	pm := model.NewPrefixManager()
	for name, ns := range raw.Prefixes {
		pm.SetPrefix(name, ns)
	}

	b := &builder{prefixes: pm}
	objects := make([]model.Object, 0, len(raw.Objects))
	for i, node := range raw.Objects {
		obj, err := b.object(node)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDocumentParse, "object %d", i).
				WithDetail("index", i)
		}
		objects = append(objects, obj)
	}

	return &Document{Prefixes: pm, Objects: objects}, nil
}
