package comment

import (
	"testing"

	"commentlint/internal/diag"
	"commentlint/internal/source"
)

func TestParseDispatchesByFormat(t *testing.T) {
	raws := []Raw{
		rawAt("// a", 1, 0),
		rawAt("/* b */", 2, 0),
		rawAt("/**\n * c\n */", 3, 0),
	}
	bag := diag.NewBag(0)
	got := ParseAll(raws, diag.BagReporter{Bag: bag})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", diag.FormatGoldenDiagnostics(bag.Items()))
	}

	want := []struct {
		format Format
		line   string
	}{
		{Inline, "a"},
		{InlineBlock, "b"},
		{JSDoc, "c"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d comments, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Format != w.format || len(got[i].Lines) != 1 || got[i].Lines[0] != w.line {
			t.Errorf("comment %d = %+v, want %v %q", i, got[i], w.format, w.line)
		}
	}
}

func TestParseAsUnknownFormat(t *testing.T) {
	bag := diag.NewBag(0)
	raw := rawAt("#!shebang", 1, 4)
	got := ParseAs(Unknown, raw, diag.BagReporter{Bag: bag})

	checkComment(t, got, Unknown, []string{}, source.Pos(1, 4))
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(items))
	}
	if items[0].Severity != diag.SevError || items[0].Code != diag.FmtUnrecognized || items[0].Message != MsgUnrecognized {
		t.Errorf("unexpected diagnostic %+v", items[0])
	}
}

func TestParseWithNilReporter(t *testing.T) {
	got := Parse(rawAt("//x", 1, 0), nil)
	if got.Lines[0] != "x" {
		t.Fatalf("unexpected lines %q", got.Lines)
	}
}
