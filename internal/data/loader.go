package data

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/phonesub/internal/phoneme"
)

// Base file names, without extension.
const (
	PhonemesFile = "phonemes"
	RulesFile    = "replacement_rules"
)

// extensions are tried in order; the first existing file wins.
var extensions = []string{".json", ".yaml", ".yml"}

// Dataset is everything loaded at startup.
type Dataset struct {
	Phonemes []phoneme.Phoneme
	Rules    []phoneme.ReplacementRule

	// Sources records the file each collection came from ("" when absent).
	PhonemesSource string
	RulesSource    string
}

// Load reads both documents from dir, or from the embedded defaults when
// dir is empty.
func Load(dir string) (*Dataset, error) {
	if dir == "" {
		return LoadFS(defaultsFS, "defaults")
	}
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS reads both documents from root inside fsys.
func LoadFS(fsys fs.FS, root string) (*Dataset, error) {
	ds := &Dataset{}

	var pd phoneme.PhonemeData
	src, err := decodeFirst(fsys, root, PhonemesFile, &pd)
	if err != nil {
		return nil, err
	}
	ds.Phonemes, ds.PhonemesSource = pd.Phonemes, src

	var rd phoneme.RuleData
	src, err = decodeFirst(fsys, root, RulesFile, &rd)
	if err != nil {
		return nil, err
	}
	ds.Rules, ds.RulesSource = rd.ReplacementRules, src

	return ds, nil
}

// decodeFirst decodes the first of base.json, base.yaml, base.yml found
// under root into v. It returns the path used, or "" when none exists.
func decodeFirst(fsys fs.FS, root, base string, v interface{}) (string, error) {
	for _, ext := range extensions {
		name := path.Join(root, base+ext)
		b, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", errors.Wrapf(err, "read %s", name)
		}
		if err := decode(b, ext, v); err != nil {
			return "", errors.Wrapf(err, "decode %s", name)
		}
		return name, nil
	}
	return "", nil
}

func decode(b []byte, ext string, v interface{}) error {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if ext == ".json" {
		return json.Unmarshal(b, v)
	}
	return yaml.Unmarshal(b, v)
}
