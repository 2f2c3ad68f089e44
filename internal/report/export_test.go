package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sandeepkv93/insightd/internal/model"
)

func sampleReport(t *testing.T) model.Report {
	t.Helper()
	g := testGenerator(populatedWeekHistory())
	r, err := g.GenerateWeeklyFrom(context.Background(), day(12))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	return r
}

func TestExportJSONRoundTrip(t *testing.T) {
	r := sampleReport(t)

	b, err := Export(r, FormatJSON)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var back model.Report
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if !reflect.DeepEqual(r, back) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", r, back)
	}
}

func TestExportIsByteStable(t *testing.T) {
	r := sampleReport(t)
	for _, format := range []Format{FormatJSON, FormatText} {
		first, err := Export(r, format)
		if err != nil {
			t.Fatalf("export %s failed: %v", format, err)
		}
		second, err := Export(r, format)
		if err != nil {
			t.Fatalf("repeat export %s failed: %v", format, err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("%s export not byte-stable", format)
		}
	}
}

func TestExportTextSectionOrder(t *testing.T) {
	r := sampleReport(t)
	b, err := Export(r, FormatText)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	text := string(b)

	sections := []string{
		"# Weekly Report",
		"## Summary",
		"## Achievements",
		"## Improvement Areas",
		"## Motivational Message",
		"## Recommendations",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(text, section)
		if idx < 0 {
			t.Fatalf("missing section %q", section)
		}
		if idx < last {
			t.Fatalf("section %q out of order", section)
		}
		last = idx
	}
	if !strings.Contains(text, "Completion rate: 69.2%") {
		t.Fatalf("summary values not rendered:\n%s", text)
	}
}

func TestExportTextEmptyReportSections(t *testing.T) {
	g := testGenerator(&memHistory{})
	r, err := g.GenerateWeeklyFrom(context.Background(), day(12))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, err := Export(r, FormatText)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	text := string(b)
	if !strings.Contains(text, "None recorded this period.") {
		t.Fatal("expected empty achievements placeholder")
	}
	if !strings.Contains(text, "All metrics met their targets.") {
		t.Fatal("expected empty improvement placeholder")
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	if _, err := Export(model.Report{}, Format("xml")); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got: %v", err)
	}
}

func TestExportToFile(t *testing.T) {
	r := sampleReport(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "report.json")
	if err := ExportToFile(r, FormatJSON, path); err != nil {
		t.Fatalf("export to file failed: %v", err)
	}
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	inMemory, err := Export(r, FormatJSON)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !bytes.Equal(onDisk, inMemory) {
		t.Fatal("file contents differ from in-memory export")
	}
}

func TestExportToFileFailure(t *testing.T) {
	r := sampleReport(t)
	path := filepath.Join(t.TempDir(), "missing", "report.txt")
	if err := ExportToFile(r, FormatText, path); !errors.Is(err, ErrExportFailed) {
		t.Fatalf("expected ErrExportFailed, got: %v", err)
	}
}
