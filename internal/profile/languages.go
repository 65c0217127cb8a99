package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

type LanguageShare struct {
	Name    string
	Percent int
}

// Languages is an ordered language -> percentage mapping. It is encoded as a
// JSON/YAML object whose key order is preserved.
type Languages []LanguageShare

// Percent returns the share for name, or 0 when absent.
func (l Languages) Percent(name string) int {
	for _, s := range l {
		if s.Name == name {
			return s.Percent
		}
	}
	return 0
}

// Sorted returns a copy ordered by descending percentage, then name.
func (l Languages) Sorted() Languages {
	out := append(Languages(nil), l...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (l Languages) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(s.Percent))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (l *Languages) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("languages: expected object, got %v", tok)
	}

	var out Languages
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("languages: expected string key, got %v", tok)
		}
		var percent int
		if err := dec.Decode(&percent); err != nil {
			return fmt.Errorf("languages: %s: %w", name, err)
		}
		out = append(out, LanguageShare{Name: name, Percent: percent})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*l = out
	return nil
}

func (l Languages) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, s := range l {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(s.Percent)},
		)
	}
	return node, nil
}

func (l *Languages) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*l = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("languages: expected mapping at line %d", value.Line)
	}

	var out Languages
	for i := 0; i+1 < len(value.Content); i += 2 {
		var percent int
		if err := value.Content[i+1].Decode(&percent); err != nil {
			return fmt.Errorf("languages: %s: %w", value.Content[i].Value, err)
		}
		out = append(out, LanguageShare{Name: value.Content[i].Value, Percent: percent})
	}

	*l = out
	return nil
}
