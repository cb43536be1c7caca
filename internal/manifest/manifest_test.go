package manifest

import (
	"errors"
	"testing"

	"github.com/starford/listposts/internal/apperr"
	"github.com/starford/listposts/internal/models"
	"github.com/starford/listposts/internal/parser"
)

func dated(t *testing.T, path, date string) models.Post {
	t.Helper()
	k, err := parser.SortKey(date)
	if err != nil {
		t.Fatal(err)
	}
	return models.Post{
		Path:    path,
		Fields:  []models.Field{{Key: "date", Value: date}},
		SortKey: k,
		HasDate: true,
	}
}

func paths(m Manifest) []string {
	out := make([]string, len(m))
	for i, p := range m {
		out[i] = p.Path
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuild_NewestFirst(t *testing.T) {
	b := NewBuilder(0)
	for _, p := range []models.Post{
		dated(t, "old.md", "2022-06-01"),
		dated(t, "new.md", "2024-02-01"),
		dated(t, "mid.md", "2023-12-31"),
	} {
		if err := b.Add(p); err != nil {
			t.Fatal(err)
		}
	}
	got := paths(b.Build())
	want := []string{"new.md", "mid.md", "old.md"}
	if !equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBuild_StableTies(t *testing.T) {
	b := NewBuilder(0)
	_ = b.Add(dated(t, "first.md", "2024-03-01"))
	_ = b.Add(dated(t, "xmas.md", "2023-12-25"))
	_ = b.Add(dated(t, "second.md", "2024-03-01"))

	got := paths(b.Build())
	want := []string{"first.md", "second.md", "xmas.md"}
	if !equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBuild_UndatedLast(t *testing.T) {
	b := NewBuilder(0)
	_ = b.Add(models.Post{Path: "nodate-a.md"})
	_ = b.Add(dated(t, "dated.md", "1999-01-01"))
	_ = b.Add(models.Post{Path: "nodate-b.md"})

	got := paths(b.Build())
	want := []string{"dated.md", "nodate-a.md", "nodate-b.md"}
	if !equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBuild_DoesNotMutateBuilder(t *testing.T) {
	b := NewBuilder(0)
	_ = b.Add(dated(t, "a.md", "2020-01-01"))
	_ = b.Add(dated(t, "b.md", "2021-01-01"))
	_ = b.Build()
	if b.posts[0].Path != "a.md" {
		t.Errorf("Build reordered the builder's posts")
	}
}

func TestAdd_Capacity(t *testing.T) {
	b := NewBuilder(2)
	if err := b.Add(models.Post{Path: "1"}); err != nil {
		t.Fatal(err)
	}
	if err := b.Add(models.Post{Path: "2"}); err != nil {
		t.Fatal(err)
	}
	err := b.Add(models.Post{Path: "3"})
	if !errors.Is(err, apperr.ErrCapacity) {
		t.Fatalf("err = %v, want ErrCapacity", err)
	}
	if b.Len() != 2 {
		t.Errorf("len = %d, want 2", b.Len())
	}
}
