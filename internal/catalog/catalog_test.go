package catalog

import (
	"errors"
	"testing"
)

func TestNewAssignsPositionalIDs(t *testing.T) {
	c, err := New([]Record{
		{Name: "a", Volume: 1, Mass: 2},
		{Name: "b", Glyph: "🔔", Volume: 3, Mass: 4},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	for i, e := range c.Entries() {
		if e.ID != ID(i) {
			t.Errorf("entry %d has ID %d", i, e.ID)
		}
	}
	a, _ := c.Entry(0)
	if a.Glyph != DefaultGlyph {
		t.Errorf("glyph = %q, want default %q", a.Glyph, DefaultGlyph)
	}
	b, ok := c.Entry(1)
	if !ok || b.Glyph != "🔔" || b.Volume != 3 || b.Mass != 4 {
		t.Errorf("Entry(1) = %+v, %v", b, ok)
	}
}

func TestNewRejectsInvalidRecords(t *testing.T) {
	cases := []struct {
		name    string
		records []Record
		want    error
	}{
		{"no records", nil, ErrEmpty},
		{"missing name", []Record{{Volume: 1, Mass: 1}}, ErrInvalidRecord},
		{"zero volume", []Record{{Name: "x", Volume: 0, Mass: 1}}, ErrInvalidRecord},
		{"negative mass", []Record{{Name: "x", Volume: 1, Mass: -5}}, ErrInvalidRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.records)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestEntryOutOfRange(t *testing.T) {
	c, err := New([]Record{{Name: "a", Volume: 1, Mass: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, id := range []ID{-1, 1, 99} {
		if _, ok := c.Entry(id); ok {
			t.Errorf("Entry(%d) ok, want miss", id)
		}
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	c, _ := New([]Record{{Name: "a", Volume: 1, Mass: 1}})
	es := c.Entries()
	es[0].Name = "mutated"
	if e, _ := c.Entry(0); e.Name != "a" {
		t.Errorf("catalog mutated through Entries(): %q", e.Name)
	}
}
