package page_test

import (
	"bytes"
	"context"
	"testing"
	"testing/fstest"

	"github.com/randomtoy/fortune-go/internal/adapters/page"
)

func TestEmbeddedStore_Index(t *testing.T) {
	s := page.NewEmbeddedStore()

	raw, err := s.Index(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(raw, []byte("<!DOCTYPE html>")) {
		t.Error("embedded page is not an HTML document")
	}
	if !bytes.Contains(raw, []byte("api/fortune?extra=")) {
		t.Error("embedded page does not call the fortune endpoint")
	}
}

func TestStore_Missing(t *testing.T) {
	s := page.NewStore(fstest.MapFS{})

	if _, err := s.Index(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
	// The failure is remembered.
	if _, err := s.Index(context.Background()); err == nil {
		t.Fatal("expected error on second call, got nil")
	}
}

func TestStore_CustomFS(t *testing.T) {
	s := page.NewStore(fstest.MapFS{
		page.IndexFile: &fstest.MapFile{Data: []byte("<p>hi</p>")},
	})

	raw, err := s.Index(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != "<p>hi</p>" {
		t.Errorf("unexpected page: %s", raw)
	}
}
