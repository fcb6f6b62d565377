package deepexn

import (
	"encoding/base64"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Atoms map to YAML scalars and lists to sequences. Mappings are accepted on
// input and read as a list of (key value) pairs.

// MarshalYAML leaves plain text to yaml.v3. Atoms with line breaks or other
// unprintable runes are double quoted, since block and single quoted scalars
// fold them, and invalid UTF-8 is written as !!binary.
func (a Atom) MarshalYAML() (any, error) {
	s := string(a)
	switch {
	case !utf8.ValidString(s):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!binary", Value: base64.StdEncoding.EncodeToString([]byte(s))}, nil
	case strings.IndexFunc(s, func(r rune) bool { return !unicode.IsPrint(r) }) >= 0:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: s}, nil
	}
	return s, nil
}

func (l List) MarshalYAML() (any, error) {
	out := make([]any, len(l))
	for i, e := range l {
		if e == nil {
			out[i] = []any{}
			continue
		}
		out[i] = e
	}
	return out, nil
}

func (l *List) UnmarshalYAML(node *yaml.Node) error {
	s, err := sexpFromNode(node)
	if err != nil {
		return err
	}
	list, ok := s.(List)
	if !ok {
		return bareRaiser.ofn("yaml node is not a sequence", "line", node.Line)
	}
	*l = list
	return nil
}

func MarshalSexpYAML(s Sexp) ([]byte, error) {
	if s == nil {
		s = List{}
	}
	return yaml.Marshal(s)
}

func UnmarshalSexpYAML(data []byte) (Sexp, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return sexpFromNode(&node)
}

func sexpFromNode(node *yaml.Node) (Sexp, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return List{}, nil
		}
		return sexpFromNode(node.Content[0])
	case yaml.AliasNode:
		return sexpFromNode(node.Alias)
	case yaml.ScalarNode:
		if node.ShortTag() == "!!binary" {
			raw, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(node.Value), ""))
			if err != nil {
				return nil, bareRaiser.ofn("invalid !!binary scalar", "line", node.Line, "reason", err.Error())
			}
			return Atom(raw), nil
		}
		return Atom(node.Value), nil
	case yaml.SequenceNode:
		list := make(List, 0, len(node.Content))
		for _, child := range node.Content {
			s, err := sexpFromNode(child)
			if err != nil {
				return nil, err
			}
			list = append(list, s)
		}
		return list, nil
	case yaml.MappingNode:
		list := make(List, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, err := sexpFromNode(node.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := sexpFromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			list = append(list, List{k, v})
		}
		return list, nil
	}
	return nil, bareRaiser.ofn("unsupported yaml node", "kind", int(node.Kind), "line", node.Line)
}
