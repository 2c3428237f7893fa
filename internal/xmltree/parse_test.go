package xmltree

import (
	"errors"
	"testing"
)

func TestParseBuildsTree(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8"?>
<items totalitems="2">
	<item objectid="13">
		<name sortindex="1">Catan</name>
		<stats minplayers="3"><rating value="8"><average value="7.1"/></rating></stats>
	</item>
	<item objectid="822"><name>Carcassonne</name></item>
</items>`

	root, err := ParseString(doc)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if root.Name != "items" {
		t.Fatalf("expected root items, got %s", root.Name)
	}
	if v, ok := root.Attr("totalitems"); !ok || v != "2" {
		t.Fatalf("unexpected root attribute %q ok=%v", v, ok)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}

	first := root.Children[0]
	if id, _ := first.Attr("objectid"); id != "13" {
		t.Fatalf("expected objectid 13, got %s", id)
	}
	if name := first.Find("name"); name == nil || name.Value != "Catan" {
		t.Fatalf("unexpected name node %+v", name)
	}
	avg := first.Find("stats").Find("rating").Find("average")
	if v, _ := avg.Attr("value"); v != "7.1" {
		t.Fatalf("expected nested average value, got %q", v)
	}
	if got := len(root.FindAll("item")); got != 2 {
		t.Fatalf("expected FindAll to return 2 items, got %d", got)
	}
}

func TestParseKeepsEntitiesVerbatim(t *testing.T) {
	root, err := ParseString(`<name title="Tom &amp; Jerry">Ticket &amp; Ride &#039;Europe&#039;</name>`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if root.Value != "Ticket &amp; Ride &#039;Europe&#039;" {
		t.Fatalf("expected raw entity text, got %q", root.Value)
	}
	if v, _ := root.Attr("title"); v != "Tom &amp; Jerry" {
		t.Fatalf("expected raw attribute text, got %q", v)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"whitespace": "   \n",
		"unclosed":   "<items><item>",
		"mismatched": "<items></item>",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseString(doc); err == nil {
				t.Fatalf("expected error for %q", doc)
			}
		})
	}

	if _, err := ParseString(""); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestNilNodeHelpers(t *testing.T) {
	var n *Node
	if n.Find("x") != nil || n.FindAll("x") != nil {
		t.Fatal("expected nil results on nil node")
	}
	if _, ok := n.Attr("x"); ok {
		t.Fatal("expected missing attribute on nil node")
	}
}
