package migrate

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openRaw(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "migrate_test.db")
	database, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

func mustVersion(t *testing.T, database *sql.DB) int {
	t.Helper()

	version, err := Version(context.Background(), database)
	if err != nil {
		t.Fatalf("read version: %v", err)
	}
	return version
}

func hasTable(t *testing.T, database *sql.DB, name string) bool {
	t.Helper()

	var count int
	err := database.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	if err != nil {
		t.Fatalf("check table %s: %v", name, err)
	}
	return count > 0
}

func TestUpFromEmptyStore(t *testing.T) {
	database := openRaw(t)
	ctx := context.Background()

	if err := Up(ctx, database); err != nil {
		t.Fatalf("up: %v", err)
	}

	want := Steps()[len(Steps())-1].To
	if got := mustVersion(t, database); got != want {
		t.Fatalf("version = %d, want %d", got, want)
	}

	for _, table := range []string{"themes", "documents", "fonts", "settings", "servers"} {
		if !hasTable(t, database, table) {
			t.Fatalf("table %s missing after migration", table)
		}
	}
}

func TestMigrateFromVersionOne(t *testing.T) {
	database := openRaw(t)
	ctx := context.Background()

	// Stand the store up at version 1 and seed rows shaped like a legacy
	// install.
	if err := Run(ctx, database, Steps()[:1]); err != nil {
		t.Fatalf("baseline: %v", err)
	}
	if got := mustVersion(t, database); got != 1 {
		t.Fatalf("version = %d, want 1", got)
	}

	seed := []struct {
		uuid string
		path string
	}{
		{uuid: "doc-1", path: "/sdcard/main.py"},
		{uuid: "doc-2", path: "file:///sdcard/notes.md"},
		{uuid: "doc-3", path: "/sdcard/readme"},
	}
	for _, doc := range seed {
		if _, err := database.Exec(
			"INSERT INTO documents (uuid, path) VALUES (?, ?)", doc.uuid, doc.path,
		); err != nil {
			t.Fatalf("seed document %s: %v", doc.uuid, err)
		}
	}
	if _, err := database.Exec(
		"INSERT INTO fonts (uuid, name, path) VALUES ('font-1', 'JetBrains Mono', '/fonts/jbm.ttf')",
	); err != nil {
		t.Fatalf("seed font: %v", err)
	}

	if err := Up(ctx, database); err != nil {
		t.Fatalf("up: %v", err)
	}
	if got := mustVersion(t, database); got != 4 {
		t.Fatalf("version = %d, want 4", got)
	}

	if !hasTable(t, database, "servers") {
		t.Fatal("servers table missing")
	}

	wantDocs := map[string]struct {
		path     string
		language string
	}{
		"doc-1": {path: "file:///sdcard/main.py", language: "python"},
		"doc-2": {path: "file:///sdcard/notes.md", language: "markdown"},
		"doc-3": {path: "file:///sdcard/readme", language: "plaintext"},
	}
	rows, err := database.Query("SELECT uuid, path, language, filesystem_uuid FROM documents")
	if err != nil {
		t.Fatalf("read documents: %v", err)
	}
	defer rows.Close()
	seen := 0
	for rows.Next() {
		var uuid, path, language, filesystem string
		if err := rows.Scan(&uuid, &path, &language, &filesystem); err != nil {
			t.Fatalf("scan document: %v", err)
		}
		want, ok := wantDocs[uuid]
		if !ok {
			t.Fatalf("unexpected document %q", uuid)
		}
		if path != want.path {
			t.Fatalf("document %s path = %q, want %q", uuid, path, want.path)
		}
		if language != want.language {
			t.Fatalf("document %s language = %q, want %q", uuid, language, want.language)
		}
		if filesystem != "local" {
			t.Fatalf("document %s filesystem_uuid = %q, want local", uuid, filesystem)
		}
		seen++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("read documents: %v", err)
	}
	if seen != len(wantDocs) {
		t.Fatalf("saw %d documents, want %d", seen, len(wantDocs))
	}

	var fontUUID string
	if err := database.QueryRow("SELECT font_uuid FROM fonts WHERE uuid = 'font-1'").Scan(&fontUUID); err != nil {
		t.Fatalf("read font: %v", err)
	}
	if fontUUID != "legacy" {
		t.Fatalf("font_uuid = %q, want legacy", fontUUID)
	}

	// The cursor column must default for rows inserted without it.
	if _, err := database.Exec(
		"INSERT INTO themes (uuid, name, author, description) VALUES ('t1', 'Test', '', '')",
	); err != nil {
		t.Fatalf("insert theme: %v", err)
	}
	var cursor string
	if err := database.QueryRow("SELECT cursor_color FROM themes WHERE uuid = 't1'").Scan(&cursor); err != nil {
		t.Fatalf("read cursor color: %v", err)
	}
	if cursor != "#BBBBBB" {
		t.Fatalf("cursor_color = %q, want #BBBBBB", cursor)
	}
}

func TestUpTwiceIsNoOp(t *testing.T) {
	database := openRaw(t)
	ctx := context.Background()

	if err := Run(ctx, database, Steps()[:1]); err != nil {
		t.Fatalf("baseline: %v", err)
	}
	if _, err := database.Exec(
		"INSERT INTO documents (uuid, path) VALUES ('doc-1', '/sdcard/app.js')",
	); err != nil {
		t.Fatalf("seed document: %v", err)
	}

	if err := Up(ctx, database); err != nil {
		t.Fatalf("first up: %v", err)
	}
	if err := Up(ctx, database); err != nil {
		t.Fatalf("second up: %v", err)
	}

	var path string
	if err := database.QueryRow("SELECT path FROM documents WHERE uuid = 'doc-1'").Scan(&path); err != nil {
		t.Fatalf("read document: %v", err)
	}
	if path != "file:///sdcard/app.js" {
		t.Fatalf("path = %q, want single file:// prefix", path)
	}
}

func TestAbortedStepLeavesVersion(t *testing.T) {
	database := openRaw(t)
	ctx := context.Background()

	boom := errors.New("boom")
	steps := []Step{
		Steps()[0],
		{
			Name: "broken",
			From: 1,
			To:   2,
			Apply: func(ctx context.Context, tx *sql.Tx) error {
				if _, err := tx.ExecContext(ctx, "CREATE TABLE half_done (id INTEGER)"); err != nil {
					return err
				}
				return boom
			},
		},
	}

	err := Run(ctx, database, steps)
	var abort *AbortError
	if !errors.As(err, &abort) {
		t.Fatalf("expected *AbortError, got %v", err)
	}
	if abort.Step != "broken" {
		t.Fatalf("abort step = %q, want broken", abort.Step)
	}
	if !errors.Is(err, boom) {
		t.Fatal("abort error must wrap the step failure")
	}

	if got := mustVersion(t, database); got != 1 {
		t.Fatalf("version = %d, want 1 (last completed step)", got)
	}
	if hasTable(t, database, "half_done") {
		t.Fatal("partial work from the failed step must be rolled back")
	}
}

func TestRunRejectsBadStepSets(t *testing.T) {
	noop := func(ctx context.Context, tx *sql.Tx) error { return nil }

	tests := []struct {
		name  string
		steps []Step
	}{
		{name: "gap", steps: []Step{
			{Name: "a", From: 0, To: 1, Apply: noop},
			{Name: "b", From: 2, To: 3, Apply: noop},
		}},
		{name: "jump", steps: []Step{
			{Name: "a", From: 0, To: 2, Apply: noop},
		}},
		{name: "out_of_order", steps: []Step{
			{Name: "b", From: 1, To: 2, Apply: noop},
			{Name: "a", From: 0, To: 1, Apply: noop},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			database := openRaw(t)
			if err := Run(context.Background(), database, test.steps); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestRunRefusesStoreAheadOfSteps(t *testing.T) {
	database := openRaw(t)
	ctx := context.Background()

	if err := Up(ctx, database); err != nil {
		t.Fatalf("up: %v", err)
	}

	// A store past every known step stays untouched.
	if err := Run(ctx, database, Steps()); err != nil {
		t.Fatalf("re-run on migrated store: %v", err)
	}
	if got := mustVersion(t, database); got != 4 {
		t.Fatalf("version = %d, want 4", got)
	}
}
