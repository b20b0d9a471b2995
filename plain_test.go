package wikidump

import (
	"io"
	"strings"
	"testing"
)

func TestPlainReader(t *testing.T) {
	in := "42\tSample\tHello world\n" +
		"43\tAnother\tMore text here\n"
	pr := NewPlainReader(strings.NewReader(in))

	p, err := pr.Next()
	if err != nil {
		t.Fatalf("Error reading first record: %v", err)
	}
	want := Page{ID: 42, Title: "Sample", Text: "Hello world", StartOffset: 0}
	if *p != want {
		t.Errorf("First record mismatch: got %+v, want %+v", p, want)
	}

	p, err = pr.Next()
	if err != nil {
		t.Fatalf("Error reading second record: %v", err)
	}
	if p.ID != 43 || p.Title != "Another" || p.Text != "More text here" {
		t.Errorf("Second record mismatch: %+v", p)
	}
	if exp := int64(len("42\tSample\tHello world\n")); p.StartOffset != exp {
		t.Errorf("Expected second record at offset %v, got %v",
			exp, p.StartOffset)
	}

	if _, err = pr.Next(); err != io.EOF {
		t.Fatalf("Expected io.EOF at end, got %v", err)
	}
}

func TestPlainReaderNoTrailingNewline(t *testing.T) {
	pr := NewPlainReader(strings.NewReader("7\tLast\tno newline"))
	p, err := pr.Next()
	if err != nil {
		t.Fatalf("Error reading final record: %v", err)
	}
	if p.ID != 7 || p.Text != "no newline" {
		t.Errorf("Final record mismatch: %+v", p)
	}
	if _, err = pr.Next(); err != io.EOF {
		t.Fatalf("Expected io.EOF after final record, got %v", err)
	}
}

func TestPlainReaderMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"two fields", "42\tSample\n"},
		{"four fields", "42\tSample\tx\ty\n"},
		{"no tabs", "just some text\n"},
		{"bad id", "nope\tSample\ttext\n"},
	}
	for _, test := range tests {
		_, err := NewPlainReader(strings.NewReader(test.in)).Next()
		if err == nil || err == io.EOF {
			t.Errorf("%v: expected an error, got %v", test.name, err)
		}
	}
}
