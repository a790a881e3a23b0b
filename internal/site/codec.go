package site

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type blogOptions struct {
	Path            string `json:"path,omitempty" yaml:"path,omitempty"`
	ShowReadingTime bool   `json:"showReadingTime,omitempty" yaml:"showReadingTime,omitempty"`
	EditURL         string `json:"editUrl,omitempty" yaml:"editUrl,omitempty"`
}

func (b Blog) options() blogOptions {
	return blogOptions{Path: b.Path, ShowReadingTime: b.ShowReadingTime, EditURL: b.EditURL}
}

func (b *Blog) setOptions(o blogOptions) {
	*b = Blog{Enabled: true, Path: o.Path, ShowReadingTime: o.ShowReadingTime, EditURL: o.EditURL}
}

// MarshalJSON encodes a disabled blog as false and an enabled one as its options.
func (b Blog) MarshalJSON() ([]byte, error) {
	if !b.Enabled {
		return []byte("false"), nil
	}
	return json.Marshal(b.options())
}

// UnmarshalJSON accepts a boolean or an options object.
func (b *Blog) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "false", "null":
		*b = Blog{}
		return nil
	case "true":
		*b = Blog{Enabled: true}
		return nil
	}
	var o blogOptions
	if err := decodeStrictJSON(data, &o); err != nil {
		return fmt.Errorf("blog: %w", err)
	}
	b.setOptions(o)
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (b Blog) MarshalYAML() (any, error) {
	if !b.Enabled {
		return false, nil
	}
	return b.options(), nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (b *Blog) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.Tag == "!!null" {
			*b = Blog{}
			return nil
		}
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return fmt.Errorf("blog: expected boolean or mapping at line %d", node.Line)
		}
		*b = Blog{Enabled: enabled}
		return nil
	}
	var o blogOptions
	if err := decodeStrictYAML(node, &o); err != nil {
		return fmt.Errorf("blog at line %d: %w", node.Line, err)
	}
	b.setOptions(o)
	return nil
}

// MarshalJSON encodes the preset as [name, options].
func (p Preset) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Name, p.Options})
}

// UnmarshalJSON accepts [name, options], [name] or a bare name.
func (p *Preset) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*p = Preset{Name: name}
		return nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("preset: expected [name, options]: %w", err)
	}
	if len(parts) == 0 || len(parts) > 2 {
		return fmt.Errorf("preset: expected 1 or 2 elements, got %d", len(parts))
	}
	var out Preset
	if err := json.Unmarshal(parts[0], &out.Name); err != nil {
		return fmt.Errorf("preset name: %w", err)
	}
	if len(parts) == 2 {
		if err := decodeStrictJSON(parts[1], &out.Options); err != nil {
			return fmt.Errorf("preset %q options: %w", out.Name, err)
		}
	}
	*p = out
	return nil
}

// MarshalYAML encodes the preset as a two-element sequence.
func (p Preset) MarshalYAML() (any, error) {
	return []any{p.Name, p.Options}, nil
}

// UnmarshalYAML accepts a [name, options] sequence or a bare name.
func (p *Preset) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*p = Preset{Name: node.Value}
		return nil
	case yaml.SequenceNode:
	default:
		return fmt.Errorf("preset: expected [name, options] at line %d", node.Line)
	}

	if len(node.Content) == 0 || len(node.Content) > 2 {
		return fmt.Errorf("preset: expected 1 or 2 elements at line %d, got %d", node.Line, len(node.Content))
	}
	var out Preset
	if err := node.Content[0].Decode(&out.Name); err != nil {
		return fmt.Errorf("preset name: %w", err)
	}
	if len(node.Content) == 2 {
		if err := decodeStrictYAML(node.Content[1], &out.Options); err != nil {
			return fmt.Errorf("preset %q options at line %d: %w", out.Name, node.Content[1].Line, err)
		}
	}
	*p = out
	return nil
}

// decodeStrictJSON decodes data into out, rejecting unknown keys. Custom
// unmarshalers do not inherit DisallowUnknownFields from the outer decoder.
func decodeStrictJSON(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// decodeStrictYAML decodes node into out, rejecting unknown keys.
// yaml.Node.Decode does not honour KnownFields, so the node is re-encoded and
// decoded by a strict decoder.
func decodeStrictYAML(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !stdErrors.Is(err, io.EOF) {
		return err
	}
	return nil
}
