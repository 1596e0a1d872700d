package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a catalog document from r. The document is a single
// JSON object mapping dish keys to dish records. The decoder walks the
// token stream instead of unmarshaling into a map so that the key order
// of the source document survives into the Collection.
func DecodeJSON(r io.Reader) (*Collection, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("catalog: read document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("catalog: document root is %v, want object", tok)
	}

	c := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("catalog: read dish key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("catalog: dish key is %v, want string", keyTok)
		}

		var d Dish
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("catalog: decode dish %q: %w", key, err)
		}
		if err := c.Add(key, &d); err != nil {
			return nil, err
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("catalog: read document end: %w", err)
	}

	return c, nil
}

// DecodeYAML parses a catalog document from raw YAML bytes. The schema
// matches DecodeJSON. yaml.v3 mapping nodes keep their source order, so
// the Collection is built by walking the node tree rather than
// unmarshaling into a map.
func DecodeYAML(data []byte) (*Collection, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("catalog: empty yaml document")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("catalog: yaml root is %v, want mapping", root.Kind)
	}

	c := New()
	// Mapping node content alternates key, value.
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valNode := root.Content[i+1]

		var d Dish
		if err := valNode.Decode(&d); err != nil {
			return nil, fmt.Errorf("catalog: decode dish %q: %w", keyNode.Value, err)
		}
		if err := c.Add(keyNode.Value, &d); err != nil {
			return nil, err
		}
	}

	return c, nil
}
