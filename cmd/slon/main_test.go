package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.slon")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFmtCommand(t *testing.T) {
	path := writeTemp(t, "( b : 2 , a : 1 )")

	out, err := runCmd(t, "fmt", path)
	if err != nil {
		t.Fatalf("fmt failed: %v", err)
	}
	if out != "(b: 2, a: 1)\n" {
		t.Errorf("got %q", out)
	}

	out, err = runCmd(t, "fmt", "--sort", path)
	if err != nil {
		t.Fatalf("fmt --sort failed: %v", err)
	}
	if out != "(a: 1, b: 2)\n" {
		t.Errorf("got %q", out)
	}
}

func TestCheckCommand(t *testing.T) {
	good := writeTemp(t, "[1 | 2 | 3]")
	if _, err := runCmd(t, "check", good); err != nil {
		t.Errorf("check rejected valid input: %v", err)
	}

	bad := writeTemp(t, "(a: 1")
	if _, err := runCmd(t, "check", bad); err == nil {
		t.Error("check accepted invalid input")
	}
}

func TestFromJSONCommand(t *testing.T) {
	path := writeTemp(t, `{"name": "Alice", "id": 7}`)
	out, err := runCmd(t, "from-json", path)
	if err != nil {
		t.Fatalf("from-json failed: %v", err)
	}
	if out != "(id: 7, name: 'Alice')\n" {
		t.Errorf("got %q", out)
	}
}

func TestToJSONCommand(t *testing.T) {
	path := writeTemp(t, "(id: 7, ok: true)")
	out, err := runCmd(t, "to-json", path)
	if err != nil {
		t.Fatalf("to-json failed: %v", err)
	}
	if out != `{"id":7,"ok":true}`+"\n" {
		t.Errorf("got %q", out)
	}
}
