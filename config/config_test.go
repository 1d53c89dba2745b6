package config

import "testing"

var yamlFixture = `
googlemaps:
  apikey: AIzaFakeKey123

opennotify:
  host: http://localhost:9999

fetch:
  timeout: 10s

port: 8080
debug: true
empty:
`

func TestParseFlattensDottedKeys(t *testing.T) {
	vals,err := Parse([]byte(yamlFixture))
	if err != nil { t.Fatal(err) }

	expected := map[string]string{
		"googlemaps.apikey": "AIzaFakeKey123",
		"opennotify.host":   "http://localhost:9999",
		"fetch.timeout":     "10s",
		"port":              "8080",
		"debug":             "true",
		"empty":             "",
	}

	for k,want := range expected {
		if got := vals[k]; got != want {
			t.Errorf("key %q: got %q, wanted %q", k, got, want)
		}
	}
	if len(vals) != len(expected) {
		t.Errorf("got %d keys, wanted %d: %v", len(vals), len(expected), vals)
	}
}

func TestParseRejectsJunk(t *testing.T) {
	if _,err := Parse([]byte("godzilla: [unclosed")); err == nil {
		t.Errorf("expected a parse error for malformed yaml")
	}
}

func TestAbsentKeyIsEmpty(t *testing.T) {
	vals,err := Parse([]byte(yamlFixture))
	if err != nil { t.Fatal(err) }
	if vals["no.such.key"] != "" {
		t.Errorf("absent key should read as empty string")
	}
}
