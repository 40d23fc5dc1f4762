package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/evcraddock/comment-client/internal/db"
)

func TestAddAndList(t *testing.T) {
	repo := testSetup(t)

	c, err := repo.Add("Corey", "Nice post")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if c.Name != "Corey" {
		t.Errorf("name = %q, want %q", c.Name, "Corey")
	}
	if c.Text != "Nice post" {
		t.Errorf("text = %q, want %q", c.Text, "Nice post")
	}

	comments, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}
	if *comments[0] != *c {
		t.Errorf("listed = %+v, want %+v", *comments[0], *c)
	}
}

func TestAddAllowsEmptyStrings(t *testing.T) {
	repo := testSetup(t)

	c, err := repo.Add("", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.Name != "" || c.Text != "" {
		t.Errorf("got %+v, want empty name and text", *c)
	}
}

func TestListEmpty(t *testing.T) {
	repo := testSetup(t)

	comments, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if comments == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(comments) != 0 {
		t.Errorf("got %d comments, want 0", len(comments))
	}
}

func TestListOrderOldestFirst(t *testing.T) {
	repo := testSetup(t)

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		if _, err := repo.Add("n", text); err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
	}

	comments, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("got %d comments, want 3", len(comments))
	}
	for i, want := range texts {
		if comments[i].Text != want {
			t.Errorf("comment %d = %q, want %q", i, comments[i].Text, want)
		}
	}
}

func TestUpdate(t *testing.T) {
	repo := testSetup(t)

	c, err := repo.Add("Virtal", "Its cool!")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := repo.Update(c.ID, "Virtal", "upd: not anymore")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != c.ID {
		t.Errorf("id = %d, want %d", updated.ID, c.ID)
	}
	if updated.Text != "upd: not anymore" {
		t.Errorf("text = %q", updated.Text)
	}

	got, err := repo.Get(c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Text != "upd: not anymore" {
		t.Errorf("stored text = %q", got.Text)
	}
}

func TestUpdateNotFound(t *testing.T) {
	repo := testSetup(t)

	_, err := repo.Update(9999, "n", "t")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetNotFound(t *testing.T) {
	repo := testSetup(t)

	_, err := repo.Get(9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// testSetup creates a test DB and returns a comment repo.
func testSetup(t *testing.T) *Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})
	return NewRepository(d)
}
