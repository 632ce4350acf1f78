package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBullets(t *testing.T) {
	richText := `<div><ul><li>The feature is available from the <b>Edit</b> menu.</li>` +
		`<li>Undo must revert the last action.</li></ul>Notes &amp; extras<br>- Check on iPad</div>`
	want := []string{
		"The feature is available from the Edit menu.",
		"Undo must revert the last action.",
		"Notes & extras",
		"Check on iPad",
	}
	if diff := cmp.Diff(want, Bullets(richText)); diff != "" {
		t.Errorf("bullets mismatch (-want +got):\n%s", diff)
	}
}

func TestBullets_EmptyInput(t *testing.T) {
	if got := Bullets("  \n "); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestFetchStory(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 272889,
			"fields": {
				"System.Title": "MirrorTool",
				"Microsoft.VSTS.Common.AcceptanceCriteria": "<ul><li>The feature is available from the Edit menu.</li><li>Undo must revert the last action.</li></ul>",
				"Custom.QAPreparation": "Confirm with VoiceOver on iPad."
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Project: "drawing", APIKey: "secret"})
	s, err := c.FetchStory(context.Background(), 272889)
	if err != nil {
		t.Fatalf("FetchStory: %v", err)
	}
	if s.ID != "272889" || s.Feature != "MirrorTool" {
		t.Errorf("story = %+v", s)
	}
	if len(s.AC) != 2 || len(s.QAPrep) != 1 {
		t.Errorf("bullets = %+v / %+v", s.AC, s.QAPrep)
	}
	if gotPath != "/drawing/_apis/wit/workitems/272889" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("auth = %q", gotAuth)
	}
}

func TestFetchStory_FallsBackToDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": 7,
			"fields": {
				"System.Title": "RotateTool",
				"System.Description": "<li>Rotation is limited to 360 degrees.</li>"
			}
		}`))
	}))
	defer srv.Close()

	s, err := NewClient(Config{BaseURL: srv.URL, Project: "p"}).FetchStory(context.Background(), 7)
	if err != nil {
		t.Fatalf("FetchStory: %v", err)
	}
	if len(s.AC) != 1 || !strings.Contains(s.AC[0], "360") {
		t.Errorf("AC = %v", s.AC)
	}
}

func TestFetchStory_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such item", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewClient(Config{BaseURL: srv.URL, Project: "p"}).FetchStory(context.Background(), 1); err == nil {
		t.Error("want error on 404")
	}
}
