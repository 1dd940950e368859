package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/ethuang3393/MyVibeSaaS/db"
	"github.com/ethuang3393/MyVibeSaaS/services"
)

// setupLiveDB points the shared pool at a live Postgres and resets all
// tables. Skips the test when no database is reachable.
func setupLiveDB(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=myvibesaas_test sslmode=disable"
	}
	if err := db.InitDB(dsn); err != nil {
		t.Skipf("Failed to connect to test database: %v", err)
	}

	schema, err := os.ReadFile("../schema.sql")
	if err != nil {
		t.Fatalf("Failed to read schema.sql: %v", err)
	}
	if _, err := db.GetDB().Exec(string(schema)); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}
	for _, table := range []string{"tasks", "todolists", "stashed_urls", "users"} {
		if _, err := db.GetDB().Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

func grabSessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "vibesaas_jwt" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// Full user journey: login, pick a plan, create an AI-broken-down list,
// toggle a task, delete the list. The model endpoint is dead for the
// list step, so the breakdown is the canned 5-task fallback.
func TestEndToEndTodoFlow(t *testing.T) {
	setupLiveDB(t)
	r := buildRouter(t)

	deadStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadStub.Close()
	services.ConfigureGemini("test-key", deadStub.URL)

	// Login as a new user
	w := doRequest(r, http.MethodPost, "/login", nil, url.Values{"user_name": {"alice"}})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/check_redirect" {
		t.Fatalf("login: got %d -> %q", w.Code, w.Header().Get("Location"))
	}
	cookie := grabSessionCookie(t, w)

	user := db.GetUserByName("alice")
	if user == nil || user.Tier != "free" {
		t.Fatalf("expected fresh free-tier user, got %+v", user)
	}

	// Free tier lands on the subscription page first
	w = doRequest(r, http.MethodGet, "/check_redirect", cookie, nil)
	if loc := w.Header().Get("Location"); loc != "/subscription" {
		t.Fatalf("check_redirect: got %q, want /subscription", loc)
	}

	// Pick standard; session is reissued with the new tier
	w = doRequest(r, http.MethodPost, "/subscription", cookie, url.Values{"tier": {"standard"}})
	if loc := w.Header().Get("Location"); loc != "/todo" {
		t.Fatalf("subscription: got %q, want /todo", loc)
	}
	cookie = grabSessionCookie(t, w)

	if got := db.GetUserByName("alice").Tier; got != "standard" {
		t.Fatalf("tier not persisted: got %q", got)
	}

	// Create a list; the dead model endpoint forces the fallback breakdown
	w = doRequest(r, http.MethodPost, "/create_list", cookie, url.Values{"list_title": {"Plan trip"}})
	if loc := w.Header().Get("Location"); loc != "/todo" {
		t.Fatalf("create_list: got %q, want /todo", loc)
	}

	lists := db.GetUserListsWithTasks(user.ID)
	if len(lists) != 1 {
		t.Fatalf("expected 1 list, got %d", len(lists))
	}
	if lists[0].Name != "Plan trip" {
		t.Errorf("list name: got %q", lists[0].Name)
	}
	if len(lists[0].Tasks) != 5 {
		t.Fatalf("expected 5 tasks, got %d", len(lists[0].Tasks))
	}

	w = doRequest(r, http.MethodGet, "/todo", cookie, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Plan trip") {
		t.Fatal("dashboard does not show the new list")
	}

	// Toggle the first task to completed
	first := lists[0].Tasks[0]
	w = doRequest(r, http.MethodPost, "/toggle_task/"+first.ID, cookie, url.Values{"is_completed": {"true"}})
	if loc := w.Header().Get("Location"); loc != "/todo" {
		t.Fatalf("toggle_task: got %q, want /todo", loc)
	}

	lists = db.GetUserListsWithTasks(user.ID)
	var toggled bool
	for _, task := range lists[0].Tasks {
		if task.ID == first.ID {
			toggled = task.IsCompleted
		}
	}
	if !toggled {
		t.Error("task not marked completed")
	}

	// Delete the list; dashboard goes back to empty
	w = doRequest(r, http.MethodPost, "/delete_list/"+lists[0].ID, cookie, nil)
	if loc := w.Header().Get("Location"); loc != "/todo" {
		t.Fatalf("delete_list: got %q, want /todo", loc)
	}
	if remaining := db.GetUserListsWithTasks(user.ID); len(remaining) != 0 {
		t.Errorf("expected zero lists, got %d", len(remaining))
	}

	// Logging in again reuses the same identity
	w = doRequest(r, http.MethodPost, "/login", nil, url.Values{"user_name": {"alice"}})
	grabSessionCookie(t, w)
	if again := db.GetUserByName("alice"); again.ID != user.ID {
		t.Errorf("second login minted a new user: %s vs %s", again.ID, user.ID)
	}
}

func TestEndToEndStashFlow(t *testing.T) {
	setupLiveDB(t)
	r := buildRouter(t)

	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><h1>Go blog</h1><p>Generics arrived in Go 1.18.</p></body></html>")
	}))
	defer page.Close()

	gemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply := `{"summary": "A post about Go generics.", "tags": "go,generics,blog,language,release"}`
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, reply)
	}))
	defer gemini.Close()
	services.ConfigureGemini("test-key", gemini.URL)

	w := doRequest(r, http.MethodPost, "/login", nil, url.Values{"user_name": {"bob"}})
	cookie := grabSessionCookie(t, w)
	user := db.GetUserByName("bob")

	w = doRequest(r, http.MethodPost, "/stash_url", cookie, url.Values{"url_link": {page.URL}})
	if loc := w.Header().Get("Location"); loc != "/stash" {
		t.Fatalf("stash_url: got %q, want /stash", loc)
	}

	stashes := db.GetUserStashes(user.ID)
	if len(stashes) != 1 {
		t.Fatalf("expected 1 stash, got %d", len(stashes))
	}
	if stashes[0].Summary != "A post about Go generics." {
		t.Errorf("summary: got %q", stashes[0].Summary)
	}

	w = doRequest(r, http.MethodGet, "/stash", cookie, nil)
	if !strings.Contains(w.Body.String(), "A post about Go generics.") {
		t.Error("dashboard does not show the stash summary")
	}

	w = doRequest(r, http.MethodPost, "/delete_stash/"+stashes[0].ID, cookie, nil)
	if loc := w.Header().Get("Location"); loc != "/stash" {
		t.Fatalf("delete_stash: got %q, want /stash", loc)
	}
	if remaining := db.GetUserStashes(user.ID); len(remaining) != 0 {
		t.Errorf("expected empty stash, got %d", len(remaining))
	}
}
