package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeModule(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func execute(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	c := &cli{}
	root := newRootCmd(c)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), err
}

func TestVerifyCleanBundle(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a.js", "function onlyA() {}\n")
	writeModule(t, dir, "b.js", "function onlyB() {}\n")

	out, err := execute(t, "verify", dir)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !strings.Contains(out, "no collisions") {
		t.Errorf("output = %q, want no collisions", out)
	}
}

func TestVerifyReportsCollisions(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a.js", "function shared() {}\n")
	writeModule(t, dir, "b.js", "function shared() {}\n")

	out, err := execute(t, "verify", dir)
	if !errors.Is(err, errCollisionsRemain) {
		t.Fatalf("err = %v, want errCollisionsRemain", err)
	}
	if !strings.Contains(out, `duplicate declaration "shared"`) {
		t.Errorf("output = %q, want collision report", out)
	}
}

func TestResolveWritesOutDir(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a.js", "function shared() {}\n")
	writeModule(t, dir, "lib/b.js", "function shared() {}\n")

	outDir := t.TempDir()
	if _, err := execute(t, "resolve", dir, "--out-dir", outDir); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(outDir, "a.js"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "d_shared_1") {
		t.Errorf("a.js = %q, want rename applied", content)
	}
	if _, err := os.Stat(filepath.Join(outDir, "lib", "b.js")); err != nil {
		t.Errorf("nested module should be written: %v", err)
	}
}

func TestConfigFileSuppliesPrefix(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a.js", "function shared() {}\n")
	writeModule(t, dir, "b.js", "function shared() {}\n")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("prefix: bundle_\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "resolve", dir, "--config", cfgPath)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !strings.Contains(out, "bundle_shared_1") {
		t.Errorf("output = %q, want config prefix applied", out)
	}
}

func TestListDecls(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "app.js", "const port = 8080;\nfunction boot() { return port; }\n")

	out, err := execute(t, "list", dir, "--decls")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"app.js", "  port", "  boot"}
	if len(lines) != len(want) {
		t.Fatalf("output = %v, want %v", lines, want)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestListDepsOrder(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "app.js", "import { x } from './lib/util';\n")
	writeModule(t, dir, "lib/util.js", "export const x = 1;\n")

	out, err := execute(t, "list", dir, "--deps")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "lib/util.js" || lines[1] != "app.js" {
		t.Errorf("order = %v, want [lib/util.js app.js]", lines)
	}
}
