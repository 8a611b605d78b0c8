package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newTestReport(t *testing.T) *Report {
	t.Helper()

	conf := &ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return r
}

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open report archive: %v", err)
	}
	defer zr.Close()

	content := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s in archive: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s from archive: %v", f.Name, err)
		}
		content[f.Name] = string(data)
	}
	return content
}

func TestReportClose_Finalize(t *testing.T) {
	r := newTestReport(t)
	name := r.Name()

	dir := t.TempDir()
	result := filepath.Join(dir, "button.css")
	if err := os.WriteFile(result, []byte(":local(.btn) { color: red; }\n"), 0644); err != nil {
		t.Fatalf("failed to write result file: %v", err)
	}

	r.Store("result-button.css", result)
	r.StoreData("config.yaml", []byte("version: 1\n"))

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	content := readArchive(t, name)
	if _, ok := content["MANIFEST"]; !ok {
		t.Error("archive is missing MANIFEST")
	}
	if got := content["result-button.css"]; got != ":local(.btn) { color: red; }\n" {
		t.Errorf("stored result = %q", got)
	}
	if got := content["config.yaml"]; got != "version: 1\n" {
		t.Errorf("stored data = %q", got)
	}

	// stored paths belong to the caller and must survive finalization
	if _, err := os.Stat(result); err != nil {
		t.Errorf("stored file should not be removed: %v", err)
	}
}

func TestReportClose_RemovesCopies(t *testing.T) {
	r := newTestReport(t)

	// snapshot a directory, then change the original before finalizing
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "app.css"), []byte(".foo {}\n"), 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}
	if err := r.StoreCopy("sources", src); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "app.css"), []byte(".changed {}\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite source file: %v", err)
	}

	if len(r.tmpdirs) != 1 {
		t.Fatalf("tmpdirs = %d, want 1", len(r.tmpdirs))
	}
	copyDir := r.tmpdirs[0]

	name := r.Name()
	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	// archive holds the snapshot, not the later content
	content := readArchive(t, name)
	if got := content["sources/app.css"]; got != ".foo {}\n" {
		t.Errorf("snapshot content = %q, want copy taken at StoreCopy time", got)
	}

	// the temporary copy is gone, the original is not
	if _, err := os.Stat(copyDir); !os.IsNotExist(err) {
		os.RemoveAll(copyDir)
		t.Error("temporary copy should be removed on Close")
	}
	if _, err := os.Stat(filepath.Join(src, "app.css")); err != nil {
		t.Errorf("original should not be removed: %v", err)
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
