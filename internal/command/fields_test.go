package command

import (
	"reflect"
	"testing"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		markers  []string
		preamble string
		want     map[string][]string
	}{
		{
			name:     "preamble only",
			in:       "Alice Smith",
			markers:  []string{"n/", "p/"},
			preamble: "Alice Smith",
			want:     map[string][]string{},
		},
		{
			name:     "markers with spaces in values",
			in:       "n/Alice Smith p/9123 4567 e/alice@example.com",
			markers:  []string{"n/", "p/", "e/"},
			preamble: "",
			want: map[string][]string{
				"n/": {"Alice Smith"},
				"p/": {"9123 4567"},
				"e/": {"alice@example.com"},
			},
		},
		{
			name:     "preamble before markers",
			in:       "Bob p/555",
			markers:  []string{"p/"},
			preamble: "Bob",
			want:     map[string][]string{"p/": {"555"}},
		},
		{
			name:     "marker inside word ignored",
			in:       "i/1 r/use tcp/ip everywhere",
			markers:  []string{"i/", "r/", "p/"},
			preamble: "",
			want: map[string][]string{
				"i/": {"1"},
				"r/": {"use tcp/ip everywhere"},
			},
		},
		{
			name:     "longer marker wins",
			in:       "i/2 rm/1 r/new",
			markers:  []string{"i/", "r/", "rm/"},
			preamble: "",
			want: map[string][]string{
				"i/":  {"2"},
				"rm/": {"1"},
				"r/":  {"new"},
			},
		},
		{
			name:     "repeated markers",
			in:       "i/1 r/a r/b",
			markers:  []string{"i/", "r/"},
			preamble: "",
			want: map[string][]string{
				"i/": {"1"},
				"r/": {"a", "b"},
			},
		},
		{
			name:     "empty value",
			in:       "i/ t/x",
			markers:  []string{"i/", "t/"},
			preamble: "",
			want: map[string][]string{
				"i/": {""},
				"t/": {"x"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseFields(tt.in, tt.markers...)
			if f.Preamble != tt.preamble {
				t.Errorf("Preamble: got %q, want %q", f.Preamble, tt.preamble)
			}
			if !reflect.DeepEqual(f.values, tt.want) {
				t.Errorf("values: got %v, want %v", f.values, tt.want)
			}
		})
	}
}

func TestParseIndexedFields(t *testing.T) {
	markers := []string{"i/", "r/", "rm/"}
	tests := []struct {
		name string
		in   string
		want map[string][]string
	}{
		{
			name: "indexed marker followed by a number",
			in:   "i/1 e/2 Use SSO r/b",
			want: map[string][]string{
				"i/": {"1"},
				"e/": {"2 Use SSO"},
				"r/": {"b"},
			},
		},
		{
			name: "indexed marker followed by text stays in the value",
			in:   "i/1 r/Support e/mail login",
			want: map[string][]string{
				"i/": {"1"},
				"r/": {"Support e/mail login"},
			},
		},
		{
			name: "bare indexed marker stays in the value",
			in:   "i/1 r/Notify via e/ and sms",
			want: map[string][]string{
				"i/": {"1"},
				"r/": {"Notify via e/ and sms"},
			},
		},
		{
			name: "indexed marker at end of input",
			in:   "i/1 r/ends with e/",
			want: map[string][]string{
				"i/": {"1"},
				"r/": {"ends with e/"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseIndexedFields(tt.in, []string{"e/"}, markers...)
			if f.Preamble != "" {
				t.Errorf("Preamble: got %q", f.Preamble)
			}
			if !reflect.DeepEqual(f.values, tt.want) {
				t.Errorf("values: got %v, want %v", f.values, tt.want)
			}
		})
	}

	if got := ParseFields("i/1 r/Support e/mail", markers...); got.Has("e/") {
		t.Error("ParseFields treated an unlisted marker as a field")
	}
}

func TestFieldsAccessors(t *testing.T) {
	f := ParseFields("i/1 s/todo s/done", "i/", "s/", "t/")
	if v, ok := f.Get("s/"); !ok || v != "done" {
		t.Errorf("Get(s/): got %q, %v; want last value", v, ok)
	}
	if _, ok := f.Get("t/"); ok {
		t.Error("Get(t/) should report absent")
	}
	if !f.Has("i/") || f.Has("t/") {
		t.Error("Has reported wrong presence")
	}
	if got := f.All("s/"); !reflect.DeepEqual(got, []string{"todo", "done"}) {
		t.Errorf("All(s/): got %v", got)
	}
	if f.Empty() {
		t.Error("Empty should be false")
	}
	if !ParseFields("plain", "i/").Empty() {
		t.Error("Empty should be true without markers")
	}
}
