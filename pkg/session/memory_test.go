package session

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/daireno/pkg/editor"
	"github.com/matzehuels/daireno/pkg/section"
)

func testState(t *testing.T) editor.State {
	t.Helper()
	e := editor.New()
	if err := e.Generate(context.Background(), editor.Setup{NormalFloors: 2, Basements: 1, Apartments: 2}); err != nil {
		t.Fatal(err)
	}
	p, _ := e.ClickApartment(1, 0)
	e.Commit(context.Background(), p, "Kapıcı", false)
	return e.State()
}

func TestNew(t *testing.T) {
	sess := New(editor.State{}, time.Hour)
	if !ValidID(sess.ID) {
		t.Errorf("ID %q is not a valid session id", sess.ID)
	}
	if sess.IsExpired() {
		t.Error("new session should not be expired")
	}
	if New(editor.State{}, time.Hour).ID == sess.ID {
		t.Error("IDs should be unique")
	}
	if ValidID("../etc/passwd") || ValidID("") {
		t.Error("ValidID accepted a malformed id")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	sess := New(testState(t), time.Hour)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil for stored session")
	}
	if got.State.Setup != sess.State.Setup {
		t.Errorf("Setup = %+v, want %+v", got.State.Setup, sess.State.Setup)
	}
	if apt := got.State.Section.Floors[1].Apartments[0]; apt.Label != "Kapıcı" {
		t.Errorf("custom label = %+v", apt)
	}

	// Mutating the loaded copy must not leak into the store
	got.State.Section.Floors[0].Apartments[0] = section.Apartment{Label: "X"}
	again, _ := store.Get(ctx, sess.ID)
	if again.State.Section.Floors[0].Apartments[0].Custom() {
		t.Error("store shares state with callers")
	}
}

func TestMemoryStoreMissingAndExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if got, err := store.Get(ctx, "missing"); got != nil || err != nil {
		t.Errorf("Get(missing) = %v, %v, want nil, nil", got, err)
	}

	sess := New(editor.State{}, -time.Minute)
	store.Set(ctx, sess)
	if got, err := store.Get(ctx, sess.ID); got != nil || err != nil {
		t.Errorf("Get(expired) = %v, %v, want nil, nil", got, err)
	}
	if store.Len() != 0 {
		t.Error("expired session should be dropped on read")
	}
}

func TestMemoryStoreDeleteAndCleanup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	live := New(editor.State{}, time.Hour)
	dead := New(editor.State{}, -time.Hour)
	gone := New(editor.State{}, time.Hour)
	for _, s := range []*Session{live, dead, gone} {
		store.Set(ctx, s)
	}

	if err := store.Delete(ctx, gone.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup() error: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
	if got, _ := store.Get(ctx, live.ID); got == nil {
		t.Error("live session removed")
	}
}

func TestSessionTouch(t *testing.T) {
	sess := New(editor.State{}, -time.Second)
	if !sess.IsExpired() {
		t.Fatal("session should start expired")
	}
	sess.Touch(time.Minute)
	if sess.IsExpired() {
		t.Error("Touch should extend the session")
	}
}
