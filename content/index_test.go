package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestIndexRebuild(t *testing.T) {
	fsys := fstest.MapFS{
		"old.md":   postFile("Old", "2023-01-01", "", "old body"),
		"new.md":   postFile("New", "2024-01-01", "", "new body"),
		"draft.md": postFile("Draft", "2024-06-01", "draft: true\n", "draft body"),
	}
	ix := NewIndex(NewPostRepositoryFS(fsys, "", nil), nil)

	if got := ix.ListPosts(ListOptions{}); len(got) != 0 {
		t.Errorf("ListPosts before Rebuild = %v, want empty", slugs(got))
	}
	if n := ix.Len(); n != 0 {
		t.Errorf("Len before Rebuild = %d, want 0", n)
	}
	if err := ix.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if n := ix.Len(); n != 3 {
		t.Errorf("Len = %d, want 3 with the draft counted", n)
	}
	if ix.Built().IsZero() {
		t.Error("Built should be set after Rebuild")
	}

	public := ix.ListPosts(ListOptions{})
	if diff := cmp.Diff([]string{"new", "old"}, slugs(public)); diff != "" {
		t.Errorf("public listing (-want +got):\n%s", diff)
	}
	if public[0].Content != "" {
		t.Error("Content should be omitted without IncludeContent")
	}

	all := ix.ListPosts(ListOptions{IncludeContent: true, IncludeDrafts: true})
	if diff := cmp.Diff([]string{"draft", "new", "old"}, slugs(all)); diff != "" {
		t.Errorf("full listing (-want +got):\n%s", diff)
	}
	if all[1].Content != "new body" {
		t.Errorf("Content = %q, want new body", all[1].Content)
	}

	// Stripping content from one result must not affect the snapshot.
	again := ix.ListPosts(ListOptions{IncludeContent: true})
	if again[0].Content != "new body" {
		t.Errorf("snapshot content was modified: %q", again[0].Content)
	}
}

func TestIndexGetPostReadsFile(t *testing.T) {
	fsys := fstest.MapFS{
		"draft.md":    postFile("Draft", "2024-06-01", "draft: true\n", "x"),
		"untitled.md": file("no frontmatter"),
	}
	ix := NewIndex(NewPostRepositoryFS(fsys, "", nil), nil)
	if err := ix.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if _, ok := ix.GetPost("draft"); !ok {
		t.Error("draft should be reachable through the index")
	}
	if _, ok := ix.GetPost("untitled"); !ok {
		t.Error("untitled post should be reachable through the index")
	}
	if _, ok := ix.GetPost("missing"); ok {
		t.Error("missing post should not be found")
	}
}

func TestIndexRebuildCollision(t *testing.T) {
	fsys := fstest.MapFS{
		"hello.md": postFile("Hello", "2024-01-01", "", "x"),
	}
	ix := NewIndex(NewPostRepositoryFS(fsys, "", nil), nil)
	if err := ix.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	fsys["Hello.md"] = postFile("Hello again", "2024-01-02", "", "y")
	err := ix.Rebuild()
	if !errors.Is(err, ErrSlugCollision) {
		t.Fatalf("Rebuild error = %v, want ErrSlugCollision", err)
	}
	if diff := cmp.Diff([]string{"hello"}, slugs(ix.ListPosts(ListOptions{}))); diff != "" {
		t.Errorf("snapshot should be kept after a failed rebuild (-want +got):\n%s", diff)
	}
}

func TestIndexWatch(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("first.md", "---\ntitle: First\ndate: 2024-01-01\n---\nbody")

	ix := NewIndex(NewPostRepository(dir, nil), nil)
	if err := ix.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ix.Watch(ctx, dir, 20*time.Millisecond) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch: %v", err)
		}
	}()

	// Give the watcher a moment to register before touching files.
	time.Sleep(100 * time.Millisecond)
	write("second.md", "---\ntitle: Second\ndate: 2024-02-01\n---\nbody")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if got := slugs(ix.ListPosts(ListOptions{})); len(got) == 2 {
			if diff := cmp.Diff([]string{"second", "first"}, got); diff != "" {
				t.Errorf("listing after change (-want +got):\n%s", diff)
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("index was not rebuilt after a file change; have %v", slugs(ix.ListPosts(ListOptions{})))
}

func TestIndexWatchMissingDir(t *testing.T) {
	ix := NewIndex(NewPostRepository("missing", nil), nil)
	err := ix.Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), 0)
	if err == nil {
		t.Fatal("Watch on a missing directory should fail")
	}
}
