package extract_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/agentdesk/agentdesk/internal/extract"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     extract.Format
	}{
		{"report.pdf", extract.FormatPDF},
		{"REPORT.PDF", extract.FormatPDF},
		{"notes.md", extract.FormatMarkdown},
		{"notes.markdown", extract.FormatMarkdown},
		{"data.txt", extract.FormatText},
		{"data.csv", extract.FormatText},
		{"noextension", extract.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := extract.DetectFormat(tt.filename)
			if got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	sys := extract.New()

	_, err := sys.Extract([]byte("data"), extract.Format("docx"))
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Errorf("Extract() error = %v, want %v", err, extract.ErrUnsupportedFormat)
	}
}

func TestExtract_PlainText(t *testing.T) {
	sys := extract.New()

	got, err := sys.Extract([]byte("  hello world\n"), extract.FormatText)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("Extract() = %q, want %q", got, "hello world")
	}
}

func TestExtract_PlainText_NonUTF8(t *testing.T) {
	sys := extract.New()

	// "café" in Latin-1: é = 0xE9, not valid UTF-8.
	got, err := sys.Extract([]byte{'c', 'a', 'f', 0xE9}, extract.FormatText)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "café" {
		t.Errorf("Extract() = %q, want %q", got, "café")
	}
}

func TestExtract_Markdown(t *testing.T) {
	sys := extract.New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading and emphasis",
			input: "# Title\n\nSome **bold** text.",
			want:  "Title\n\nSome bold text.",
		},
		{
			name:  "link resolves to text",
			input: "See [the docs](https://example.com) here.",
			want:  "See the docs here.",
		},
		{
			name:  "image resolves to alt text",
			input: "![diagram](diagram.png)",
			want:  "diagram",
		},
		{
			name:  "inline code unwrapped",
			input: "Run `go test` now.",
			want:  "Run go test now.",
		},
		{
			name:  "code fences dropped, content kept",
			input: "Before\n```go\ncode line\n```\nAfter",
			want:  "Before\ncode line\nAfter",
		},
		{
			name:  "italic underscore",
			input: "This is _important_ stuff.",
			want:  "This is important stuff.",
		},
		{
			name:  "bold underscore",
			input: "This is __strong__ stuff.",
			want:  "This is strong stuff.",
		},
		{
			name:  "snake_case identifier preserved",
			input: "Set max_upload_size before restarting.",
			want:  "Set max_upload_size before restarting.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sys.Extract([]byte(tt.input), extract.FormatMarkdown)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract_Deterministic(t *testing.T) {
	sys := extract.New()
	input := []byte("# Doc\n\nContent with **emphasis** and [links](x).")

	first, err := sys.Extract(input, extract.FormatMarkdown)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	second, err := sys.Extract(input, extract.FormatMarkdown)
	if err != nil {
		t.Fatalf("Extract() second error = %v", err)
	}

	if first != second {
		t.Errorf("repeated extraction differs: %q vs %q", first, second)
	}
}

// twoPagePDF assembles a minimal uncompressed PDF with one line of text
// per page, computing cross-reference offsets as it writes.
func twoPagePDF(first, second string) []byte {
	content := func(text string) string {
		s := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(s), s)
	}
	page := func(contents int) string {
		return fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 7 0 R >> >> /Contents %d 0 R >>", contents)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 5 0 R] /Count 2 >>",
		page(4),
		content(first),
		page(6),
		content(second),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	start := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, start)

	return buf.Bytes()
}

func TestExtract_PDF_MultiPage(t *testing.T) {
	sys := extract.New()

	got, err := sys.Extract(twoPagePDF("first page", "second page"), extract.FormatPDF)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := "first page\n\nsecond page"
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtract_PDF_Malformed(t *testing.T) {
	sys := extract.New()

	_, err := sys.Extract([]byte("not a pdf at all"), extract.FormatPDF)
	if !errors.Is(err, extract.ErrExtractionFailed) {
		t.Errorf("Extract() error = %v, want %v", err, extract.ErrExtractionFailed)
	}
}
