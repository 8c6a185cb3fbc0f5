package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Bucket != "gatono-sales" || c.Key != "sales_records.csv" || c.Region != "us-east-1" {
		t.Fatalf("unexpected object coordinates: %+v", c)
	}
	if c.PivotFile != "sales_pivot.xlsx" {
		t.Fatalf("pivot_file = %q", c.PivotFile)
	}
	if c.SampleRows != 5 || !c.OpenCharts || c.FetchTimeoutSec != 0 {
		t.Fatalf("unexpected report defaults: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	chdir(t, work)

	cfgPath := filepath.Join(home, "custom.yaml")
	body := "bucket: from-file\nkey: file.csv\nsample_rows: 3\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(work, ".env"), []byte("SALESREPORT_REGION=eu-west-1\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("SALESREPORT_KEY", "env.csv")
	t.Cleanup(func() { os.Unsetenv("SALESREPORT_REGION") })

	c, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Bucket != "from-file" {
		t.Fatalf("bucket = %q, want from-file", c.Bucket)
	}
	if c.Key != "env.csv" {
		t.Fatalf("key = %q, want env override", c.Key)
	}
	if c.Region != "eu-west-1" {
		t.Fatalf("region = %q, want value from .env", c.Region)
	}
	if c.SampleRows != 3 {
		t.Fatalf("sample_rows = %d", c.SampleRows)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{Bucket: "b", Key: "k.csv", Region: "us-west-2", PivotFile: "out.xlsx", SampleRows: 2}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Bucket != "b" || out.Key != "k.csv" || out.Region != "us-west-2" || out.PivotFile != "out.xlsx" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Global
		wantErr bool
	}{
		{"ok", Global{Bucket: "b", Key: "k", Region: "r"}, false},
		{"local file needs no bucket", Global{File: "sales.csv"}, false},
		{"missing bucket", Global{Key: "k", Region: "r"}, true},
		{"missing key", Global{Bucket: "b", Region: "r"}, true},
		{"negative sample rows", Global{File: "x.csv", SampleRows: -1}, true},
		{"bad log format", Global{File: "x.csv", LogFormat: "xml"}, true},
	}
	for _, c := range cases {
		err := c.cfg.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("%s: err=%v wantErr=%v", c.name, err, c.wantErr)
		}
	}
}

// chdir changes the working directory to dir for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
