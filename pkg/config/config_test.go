package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func (s *sample) Validate() error {
	if s.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_ExpandsEnvAndKeepsDefaults(t *testing.T) {
	t.Setenv("BILLABONG_TEST_NAME", "lake")
	p := writeFile(t, "name: ${BILLABONG_TEST_NAME}\n")

	s := sample{Port: 8080}
	if err := Load(p, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "lake" || s.Port != 8080 {
		t.Fatalf("got %+v", s)
	}
}

func TestLoad_UnknownField(t *testing.T) {
	p := writeFile(t, "name: x\nprot: 1\n")
	s := sample{Port: 1}
	if err := Load(p, &s); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoad_Validates(t *testing.T) {
	p := writeFile(t, "port: 0\n")
	s := sample{}
	err := Load(p, &s)
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	p := writeFile(t, "")
	s := sample{Port: 3}
	if err := Load(p, &s); err != nil {
		t.Fatalf("empty file should keep defaults: %v", err)
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	s := sample{Port: 9}
	found, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &s)
	if err != nil || found {
		t.Fatalf("found=%v err=%v", found, err)
	}

	s.Port = 0
	if _, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &s); err == nil {
		t.Fatal("defaults should still be validated")
	}
}
