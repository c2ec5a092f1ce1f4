package tinp

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dokelung/tinp/convert"
	"github.com/dokelung/tinp/format"
)

// placeholderFile is the YAML document shape accepted by LoadPlaceholders:
//
//	placeholders:
//	  v:
//	    pattern: '\d+\.\d+\.\d+'
//	    type: string
//	  t:
//	    type: bool
type placeholderFile struct {
	Placeholders map[string]placeholderDef `yaml:"placeholders"`
}

type placeholderDef struct {
	Pattern string `yaml:"pattern"`
	Type    string `yaml:"type"`
}

// LoadPlaceholders parses a YAML placeholder document into a directive map
// suitable for WithPlaceholders. Each key names a single directive verb (a
// leading '%' is accepted and ignored); each entry carries an optional
// capture pattern and a conversion type name understood by
// convert.ParseType.
func LoadPlaceholders(r io.Reader) (map[rune]format.Placeholder, error) {
	const op = "LoadPlaceholders"

	var doc placeholderFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &Error{Op: op, Kind: KindConfiguration, Err: fmt.Errorf("parsing placeholder file: %w", err)}
	}

	phs := make(map[rune]format.Placeholder, len(doc.Placeholders))
	for key, def := range doc.Placeholders {
		name := key
		if len(name) > 1 && name[0] == '%' {
			name = name[1:]
		}
		verb, size := utf8.DecodeRuneInString(name)
		if verb == utf8.RuneError || size != len(name) {
			return nil, &Error{
				Op:      op,
				Kind:    KindConfiguration,
				Err:     fmt.Errorf("placeholder key %q must name a single directive character", key),
				Context: map[string]any{"key": key},
			}
		}

		typ, err := convert.ParseType(def.Type)
		if err != nil {
			return nil, &Error{
				Op:      op,
				Kind:    KindConfiguration,
				Err:     err,
				Context: map[string]any{"key": key},
			}
		}

		phs[verb] = format.Placeholder{Pattern: def.Pattern, Type: typ}
	}
	return phs, nil
}

// LoadPlaceholderFile reads a YAML placeholder document from path.
// See LoadPlaceholders for the document shape.
func LoadPlaceholderFile(path string) (map[rune]format.Placeholder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "LoadPlaceholderFile", Kind: KindConfiguration, Err: err}
	}
	defer f.Close()

	return LoadPlaceholders(f)
}
