package doc

import (
	"errors"
	"testing"
)

func TestNodeSizes(t *testing.T) {
	d := Doc(
		Paragraph(Text("ab")),
		Blockquote(Paragraph(Text("cd"), Text("e", MarkStrong))),
	)

	if got := d.ContentSize(); got != 11 {
		t.Errorf("ContentSize() = %d, want 11", got)
	}
	if got := d.Child(0).NodeSize(); got != 4 {
		t.Errorf("paragraph NodeSize() = %d, want 4", got)
	}
	if got := d.TextContent(); got != "abcde" {
		t.Errorf("TextContent() = %q, want %q", got, "abcde")
	}
}

func TestPlainPositions(t *testing.T) {
	d := Plain("cat bat cat")
	if d.ContentSize() != 11 {
		t.Fatalf("ContentSize() = %d, want 11", d.ContentSize())
	}
	if got := d.TextBetween(8, 11); got != "cat" {
		t.Errorf("TextBetween(8, 11) = %q, want %q", got, "cat")
	}
}

func TestNormalizeRuns(t *testing.T) {
	p := Paragraph(Text("a"), Text(""), Text("b"), Text("c", MarkEm), Text("d", MarkEm))
	if p.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2: %s", p.ChildCount(), p)
	}
	if p.Child(0).Text() != "ab" || p.Child(1).Text() != "cd" {
		t.Errorf("unexpected runs: %s", p)
	}
	if !p.Child(1).HasMark(MarkEm) {
		t.Error("second run should keep em mark")
	}
}

func TestTextBetween(t *testing.T) {
	d := Paragraphs("ab", "cd")

	tests := []struct {
		from, to int
		want     string
	}{
		{0, 8, "abcd"},
		{1, 3, "ab"},
		{2, 6, "bc"},
		{3, 5, ""},
		{-5, 100, "abcd"},
		{6, 2, ""},
	}
	for _, tt := range tests {
		if got := d.TextBetween(tt.from, tt.to); got != tt.want {
			t.Errorf("TextBetween(%d, %d) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDescendantsPositions(t *testing.T) {
	d := Doc(Paragraph(Text("ab")), Blockquote(Paragraph(Text("cd"))))

	var texts []int
	d.Descendants(func(n *Node, pos int) bool {
		if n.IsText() {
			texts = append(texts, pos)
		}
		return true
	})
	if len(texts) != 2 || texts[0] != 1 || texts[1] != 6 {
		t.Errorf("text positions = %v, want [1 6]", texts)
	}
}

func TestReplaceText(t *testing.T) {
	t.Run("inside paragraph", func(t *testing.T) {
		d := Paragraphs("hello", "world")
		got, err := d.ReplaceText(8, 13, "there")
		if err != nil {
			t.Fatalf("ReplaceText error = %v", err)
		}
		if got.TextContent() != "hellothere" {
			t.Errorf("TextContent() = %q", got.TextContent())
		}
		if d.TextContent() != "helloworld" {
			t.Error("original document was modified")
		}
		if got.Child(0) != d.Child(0) {
			t.Error("untouched block should be shared")
		}
	})

	t.Run("inherits marks", func(t *testing.T) {
		d := Doc(Paragraph(Text("a"), Text("bc", MarkStrong)))
		got, err := d.ReplaceText(3, 3, "X")
		if err != nil {
			t.Fatalf("ReplaceText error = %v", err)
		}
		want := Doc(Paragraph(Text("a"), Text("bXc", MarkStrong)))
		if !got.Equal(want) {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("across runs", func(t *testing.T) {
		d := Doc(Paragraph(Text("ab"), Text("cd", MarkEm)))
		got, err := d.ReplaceText(2, 4, "")
		if err != nil {
			t.Fatalf("ReplaceText error = %v", err)
		}
		want := Doc(Paragraph(Text("a"), Text("d", MarkEm)))
		if !got.Equal(want) {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("nested blockquote", func(t *testing.T) {
		d := Doc(Blockquote(Paragraph(Text("abc"))))
		got, err := d.ReplaceText(3, 4, "Z")
		if err != nil {
			t.Fatalf("ReplaceText error = %v", err)
		}
		if got.TextContent() != "aZc" {
			t.Errorf("TextContent() = %q", got.TextContent())
		}
	})

	t.Run("plain", func(t *testing.T) {
		got, err := Plain("cat bat").ReplaceText(0, 3, "dog")
		if err != nil {
			t.Fatalf("ReplaceText error = %v", err)
		}
		if got.TextContent() != "dog bat" {
			t.Errorf("TextContent() = %q", got.TextContent())
		}
	})

	t.Run("errors", func(t *testing.T) {
		d := Paragraphs("ab", "cd")
		if _, err := d.ReplaceText(2, 6, "x"); !errors.Is(err, ErrNotTextblock) {
			t.Errorf("cross-block err = %v, want ErrNotTextblock", err)
		}
		if _, err := d.ReplaceText(3, 1, "x"); !errors.Is(err, ErrRangeInvalid) {
			t.Errorf("inverted err = %v, want ErrRangeInvalid", err)
		}
		if _, err := d.ReplaceText(0, 99, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
			t.Errorf("out of range err = %v, want ErrOffsetOutOfRange", err)
		}
	})
}

func TestReplaceBlocks(t *testing.T) {
	d := Paragraphs("ab", "cd")

	inserted, err := d.ReplaceBlocks(4, 4, Paragraph(Text("xy")))
	if err != nil {
		t.Fatalf("insert error = %v", err)
	}
	if inserted.TextContent() != "abxycd" || inserted.ChildCount() != 3 {
		t.Errorf("after insert: %s", inserted)
	}

	deleted, err := d.ReplaceBlocks(0, 4)
	if err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if deleted.TextContent() != "cd" {
		t.Errorf("after delete: %s", deleted)
	}

	if _, err := d.ReplaceBlocks(1, 4); !errors.Is(err, ErrNotBlockBoundary) {
		t.Errorf("mid-block err = %v, want ErrNotBlockBoundary", err)
	}
	if _, err := d.ReplaceBlocks(0, 0, Text("x")); !errors.Is(err, ErrInlineBlock) {
		t.Errorf("text block err = %v, want ErrInlineBlock", err)
	}

	nested := Doc(Blockquote(Paragraph(Text("a"))))
	got, err := nested.ReplaceBlocks(4, 4, Paragraph(Text("b")))
	if err != nil {
		t.Fatalf("nested insert error = %v", err)
	}
	if got.Child(0).ChildCount() != 2 {
		t.Errorf("nested insert: %s", got)
	}
}
