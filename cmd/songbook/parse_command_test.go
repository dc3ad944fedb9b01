package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseCommandSuccessWithDate(t *testing.T) {
	out, _, err := runCLI(t, "parse", "Moonlight Sonata (05 03 23).mp3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 1 {
		t.Fatalf("expected exactly one JSON line, got %d:\n%s", len(lines), out)
	}

	var payload struct {
		Success bool   `json:"success"`
		Title   string `json:"title"`
		Date    *struct {
			Day   int `json:"day"`
			Month int `json:"month"`
			Year  int `json:"year"`
		} `json:"date"`
		SingerID int64 `json:"singer_id"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if !payload.Success {
		t.Fatal("expected success=true")
	}
	if payload.Title != "Moonlight Sonata" {
		t.Errorf("title = %q", payload.Title)
	}
	if payload.Date == nil || payload.Date.Day != 5 || payload.Date.Month != 3 || payload.Date.Year != 2023 {
		t.Errorf("unexpected date: %+v", payload.Date)
	}
	if payload.SingerID != 1 {
		t.Errorf("singer_id = %d, want default 1", payload.SingerID)
	}
}

func TestParseCommandDateIsNullWhenAbsent(t *testing.T) {
	// No current convention is dateless, but the contract requires an
	// explicit null rather than a missing key.
	out, _, err := runCLI(t, "parse", "Moonlight Sonata (05 03 23).mp3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var generic map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &generic); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := generic["date"]; !ok {
		t.Fatal("expected a date key in the payload")
	}
}

func TestParseCommandSingerIDFlag(t *testing.T) {
	out, _, err := runCLI(t, "parse", "--singer-id", "2", "Moonlight Sonata (05 03 23).mp3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	requireContains(t, out, `"singer_id":2`)
}

func TestParseCommandFailurePayload(t *testing.T) {
	out, _, err := runCLI(t, "parse", "random_notes.txt")
	if err != nil {
		t.Fatalf("parse should print a failure payload, not fail: %v", err)
	}

	var payload struct {
		Success  bool   `json:"success"`
		Error    string `json:"error"`
		Filename string `json:"filename"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if payload.Success {
		t.Fatal("expected success=false")
	}
	if payload.Error == "" {
		t.Fatal("expected an error message")
	}
	if payload.Filename != "random_notes.txt" {
		t.Errorf("filename = %q", payload.Filename)
	}
}

func TestParseCommandInvalidDateIsDistinct(t *testing.T) {
	out, _, err := runCLI(t, "parse", "Song (31 02 24).mp3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	requireContains(t, out, `"success":false`)
	requireContains(t, out, "invalid date")
}
