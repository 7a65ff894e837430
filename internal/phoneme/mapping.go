package phoneme

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Pair is one substring substitution: every occurrence of From becomes To.
type Pair struct {
	From string
	To   string
}

// Mapping is an ordered list of substitution pairs. Order is significant:
// later pairs operate on the output of earlier ones, so decoding keeps the
// order in which keys appear in the source document. Keys are unique.
type Mapping []Pair

// Len returns the number of pairs.
func (m Mapping) Len() int { return len(m) }

// Empty reports whether the mapping has no pairs.
func (m Mapping) Empty() bool { return len(m) == 0 }

// String renders the mapping as "p→b, t→d" in order.
func (m Mapping) String() string {
	parts := make([]string, 0, len(m))
	for _, p := range m {
		parts = append(parts, p.From+"→"+p.To)
	}
	return strings.Join(parts, ", ")
}

// UnmarshalJSON decodes a JSON object into pairs, in document order.
// encoding/json would otherwise go through a Go map and lose the order.
func (m *Mapping) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "mapping")
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.Errorf("mapping: expected object, got %v", tok)
	}

	var pairs Mapping
	seen := make(map[string]struct{})
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "mapping")
		}
		key, ok := kt.(string)
		if !ok {
			return errors.Errorf("mapping: unexpected key %v", kt)
		}
		var val string
		if err := dec.Decode(&val); err != nil {
			return errors.Wrapf(err, "mapping: value for %q", key)
		}
		if _, dup := seen[key]; dup {
			return errors.Errorf("mapping: duplicate key %q", key)
		}
		seen[key] = struct{}{}
		pairs = append(pairs, Pair{From: key, To: val})
	}
	if _, err := dec.Token(); err != nil {
		return errors.Wrap(err, "mapping")
	}
	*m = pairs
	return nil
}

// MarshalJSON encodes the pairs as a JSON object, preserving order.
func (m Mapping) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.From)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.To)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a YAML mapping node into pairs, in document order.
func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*m = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("mapping: line %d: expected a mapping", node.Line)
	}

	pairs := make(Mapping, 0, len(node.Content)/2)
	seen := make(map[string]struct{})
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key, val string
		if err := node.Content[i].Decode(&key); err != nil {
			return errors.Wrapf(err, "mapping: line %d", node.Content[i].Line)
		}
		if err := node.Content[i+1].Decode(&val); err != nil {
			return errors.Wrapf(err, "mapping: value for %q", key)
		}
		if _, dup := seen[key]; dup {
			return errors.Errorf("mapping: line %d: duplicate key %q", node.Content[i].Line, key)
		}
		seen[key] = struct{}{}
		pairs = append(pairs, Pair{From: key, To: val})
	}
	*m = pairs
	return nil
}
