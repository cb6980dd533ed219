package lexicon

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// legacy encodings tried in order once a file fails to be UTF-8
var legacy = []encoding.Encoding{charmap.ISO8859_1, charmap.Windows1252}

// decode returns b as UTF-8 text, falling back through the legacy encodings
func decode(b []byte) (string, error) {
	b = trimBOM(b)
	if utf8.Valid(b) {
		return string(b), nil
	}
	var err error
	for _, enc := range legacy {
		var out []byte
		if out, err = enc.NewDecoder().Bytes(b); err == nil {
			return string(out), nil
		}
	}
	return "", err
}
