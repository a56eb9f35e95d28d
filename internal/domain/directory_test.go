package domain

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDirectory_EmptyRender(t *testing.T) {
	d := NewDirectory()
	if got := d.String(); got != EmptyDirectoryMessage {
		t.Fatalf("expected %q, got %q", EmptyDirectoryMessage, got)
	}
	if d.Len() != 0 {
		t.Fatalf("expected empty directory")
	}
}

func TestDirectory_AddFindDelete(t *testing.T) {
	d := NewDirectory()
	alice := newTestRecord(t, "Alice", "0501234567")
	d.AddRecord(alice)

	got, ok := d.Find("Alice")
	if !ok || got != alice {
		t.Fatalf("expected to find Alice")
	}
	if _, ok := d.Find("alice"); ok {
		t.Fatalf("expected exact matching only")
	}
	if _, ok := d.Find("Ali"); ok {
		t.Fatalf("expected no partial matching")
	}

	d.Delete("Alice")
	if _, ok := d.Find("Alice"); ok {
		t.Fatalf("expected Alice to be deleted")
	}

	d.Delete("Alice")
	if d.Len() != 0 {
		t.Fatalf("expected delete of absent name to be a no-op")
	}
}

func TestDirectory_OverwriteLastWriteWins(t *testing.T) {
	d := NewDirectory()
	r1 := newTestRecord(t, "Alice", "0501234567")
	r2 := newTestRecord(t, "Alice", "0661112233")
	bob := newTestRecord(t, "Bob")

	d.AddRecord(r1)
	d.AddRecord(bob)
	d.AddRecord(r2)

	got, ok := d.Find("Alice")
	if !ok || got != r2 {
		t.Fatalf("expected second record to win")
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", d.Len())
	}
	if diff := cmp.Diff([]string{"Alice", "Bob"}, d.Names()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectory_IgnoresNilRecords(t *testing.T) {
	d := NewDirectory()
	d.AddRecord(nil)
	d.AddRecord(&Record{})
	if d.Len() != 0 {
		t.Fatalf("expected nil and zero records to be ignored")
	}
}

func TestDirectory_RenderInInsertionOrder(t *testing.T) {
	d := NewDirectory()
	d.AddRecord(newTestRecord(t, "Zed", "0501234567"))
	d.AddRecord(newTestRecord(t, "Alice", "0661112233", "0671112233"))
	d.AddRecord(newTestRecord(t, "Mia"))

	want := "Ім'я контакту: Zed, телефони: 0501234567\n" +
		"Ім'я контакту: Alice, телефони: 0661112233; 0671112233\n" +
		"Ім'я контакту: Mia, телефони: "
	if got := d.String(); got != want {
		t.Fatalf("render mismatch:\nwant %q\ngot  %q", want, got)
	}

	d.Delete("Alice")
	if diff := cmp.Diff([]string{"Zed", "Mia"}, d.Names()); diff != "" {
		t.Fatalf("order mismatch after delete (-want +got):\n%s", diff)
	}
}

func TestDirectory_ConcurrentAccess(t *testing.T) {
	d := NewDirectory()

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := NewRecord(fmt.Sprintf("contact-%d", i))
			if err != nil {
				t.Errorf("NewRecord: %v", err)
				return
			}
			d.AddRecord(r)
			_ = d.String()
			_, _ = d.Find(r.Name().Value())
		}(i)
	}
	wg.Wait()

	if got := d.Len(); got != writers {
		t.Fatalf("Len() = %d, want %d", got, writers)
	}
}
