package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyDocument is returned when the input holds no root element.
var ErrEmptyDocument = errors.New("xmltree: empty document")

// ParseString is Parse for in-memory documents.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a whole document and returns its root element. Character and
// entity references are kept verbatim in text and attributes, so "&amp;" in
// the source stays "&amp;" in Node values.
func Parse(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("xmltree: read: %w", err)
	}
	// Escaping every ampersand makes the decoder hand back the original
	// reference text instead of resolving it.
	data = bytes.ReplaceAll(data, []byte("&"), []byte("&amp;"))

	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		root  *Node
		stack []*Node
		text  []*strings.Builder
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("xmltree: decode: %w", err)
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			node := &Node{
				Name:       tok.Name.Local,
				Attributes: make(map[string]string, len(tok.Attr)),
			}
			for _, a := range tok.Attr {
				node.Attributes[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("xmltree: multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
			text = append(text, &strings.Builder{})
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(tok)
			}
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("xmltree: unexpected closing tag %q", tok.Name.Local)
			}
			top := stack[len(stack)-1]
			top.Value = strings.TrimSpace(text[len(text)-1].String())
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("xmltree: unclosed element %q", stack[len(stack)-1].Name)
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}
