package themes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/codr1/themehub/internal/models"
	"github.com/codr1/themehub/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(testutil.NewTestDB(t))
}

func mustCreate(t *testing.T, s *Store, uuid, name string, properties ...models.Property) {
	t.Helper()
	err := s.Create(context.Background(), models.Meta{
		UUID:   uuid,
		Name:   name,
		Author: "test",
	}, properties)
	if err != nil {
		t.Fatalf("create theme %s: %v", uuid, err)
	}
}

func TestCreateFillsFallbackColors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreate(t, s, "u1", "Midnight",
		models.Property{Key: "textColor", Value: "#ABCDEF"},
		models.Property{Key: "keywordColor", Value: "#112233"},
		models.Property{Key: "ghostColor", Value: "#FF00FF"},
	)

	theme, err := s.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got := theme.Colors["textColor"]; got != "#ABCDEF" {
		t.Fatalf("textColor = %q, want #ABCDEF", got)
	}
	if got := theme.Colors["keywordColor"]; got != "#112233" {
		t.Fatalf("keywordColor = %q, want #112233", got)
	}
	for _, cc := range models.ColorColumns {
		if cc.Key == "textColor" || cc.Key == "keywordColor" {
			continue
		}
		if got := theme.Colors[cc.Key]; got != models.FallbackColor {
			t.Fatalf("color %s = %q, want fallback %q", cc.Key, got, models.FallbackColor)
		}
	}
	if _, ok := theme.Colors["ghostColor"]; ok {
		t.Fatal("unknown property key must not be persisted")
	}
}

func TestCreateDuplicateUUIDFails(t *testing.T) {
	s := newTestStore(t)

	mustCreate(t, s, "u1", "First")
	err := s.Create(context.Background(), models.Meta{UUID: "u1", Name: "Second"}, nil)
	if err == nil {
		t.Fatal("expected constraint error on duplicate uuid")
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "missing")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if notFound.UUID != "missing" {
		t.Fatalf("error uuid = %q, want missing", notFound.UUID)
	}
}

func TestListOrdersUserThemesBeforeBuiltin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreate(t, s, "u1", "Zebra")
	mustCreate(t, s, "u2", "Aardvark")

	results, err := s.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 2+len(Builtin()) {
		t.Fatalf("got %d themes, want %d", len(results), 2+len(Builtin()))
	}

	// User themes first, in insertion order, regardless of name.
	if results[0].UUID != "u1" || results[1].UUID != "u2" {
		t.Fatalf("user themes out of order: %s, %s", results[0].UUID, results[1].UUID)
	}
	for i, builtin := range Builtin() {
		if results[2+i].UUID != builtin.UUID {
			t.Fatalf("builtin %d = %s, want %s", i, results[2+i].UUID, builtin.UUID)
		}
	}
}

func TestListFiltersCaseInsensitively(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreate(t, s, "u1", "My Dark Fork")
	mustCreate(t, s, "u2", "Pale Morning")

	results, err := s.List(ctx, "dAr")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	for _, theme := range results {
		if !strings.Contains(strings.ToLower(theme.Name), "dar") {
			t.Fatalf("theme %q does not match filter", theme.Name)
		}
	}

	// "My Dark Fork" (user) and "Darcula" (builtin), in that order.
	if len(results) != 2 {
		t.Fatalf("got %d themes, want 2", len(results))
	}
	if results[0].UUID != "u1" {
		t.Fatalf("first result = %s, want the user theme", results[0].UUID)
	}
	if results[1].UUID != "darcula" {
		t.Fatalf("second result = %s, want darcula", results[1].UUID)
	}
}

func TestRemoveClearsActiveSelection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreate(t, s, "u1", "Mine")
	if err := s.Select(ctx, models.Theme{UUID: "u1"}); err != nil {
		t.Fatalf("select: %v", err)
	}

	if err := s.Remove(ctx, models.Theme{UUID: "u1"}); err != nil {
		t.Fatalf("remove: %v", err)
	}

	current, err := s.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current != "" {
		t.Fatalf("current = %q, want empty after removing the selected theme", current)
	}
}

func TestRemoveKeepsUnrelatedSelection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreate(t, s, "u1", "Mine")
	mustCreate(t, s, "u2", "Other")
	if err := s.Select(ctx, models.Theme{UUID: "u2"}); err != nil {
		t.Fatalf("select: %v", err)
	}

	if err := s.Remove(ctx, models.Theme{UUID: "u1"}); err != nil {
		t.Fatalf("remove: %v", err)
	}

	current, err := s.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current != "u2" {
		t.Fatalf("current = %q, want u2", current)
	}
}

func TestRemoveMissingThemeIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	if err := s.Remove(context.Background(), models.Theme{UUID: "never-created"}); err != nil {
		t.Fatalf("remove of missing theme: %v", err)
	}
}

func TestSelectDoesNotValidateExistence(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Select(ctx, models.Theme{UUID: "ghost"}); err != nil {
		t.Fatalf("select: %v", err)
	}

	current, err := s.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current != "ghost" {
		t.Fatalf("current = %q, want ghost", current)
	}

	// Resolving the dangling selection fails, by design.
	if _, err := s.Get(ctx, current); err == nil {
		t.Fatal("expected not-found resolving a dangling selection")
	}
}

func TestBuiltinCopiesAreIndependent(t *testing.T) {
	first := Builtin()
	first[0].Colors["textColor"] = "#FFFFFF"

	second := Builtin()
	if second[0].Colors["textColor"] == "#FFFFFF" {
		t.Fatal("mutating a Builtin result must not leak into later calls")
	}
}
