package token

import (
	"errors"
	"testing"
)

type quoteTest struct {
	in     string
	quoted string
}

func TestQuoteRoundTrip(t *testing.T) {
	qts := []quoteTest{
		{in: "", quoted: `""`},
		{in: "hello", quoted: `"hello"`},
		{in: "he said \"hi\"", quoted: `"he said \"hi\""`},
		{in: `back\slash`, quoted: `"back\\slash"`},
		{in: "tab\there", quoted: `"tab\there"`},
		{in: "line\nbreak", quoted: `"line\nbreak"`},
		{in: "cr\rhere", quoted: `"cr\rhere"`},
		{in: "bs\bff\f", quoted: `"bs\bff\f"`},
		{in: "nul\x00", quoted: `"nul\u0000"`},
		{in: "unicode: héllo", quoted: `"unicode: héllo"`},
	}
	for _, qt := range qts {
		got := Quote(qt.in)
		if got != qt.quoted {
			t.Errorf("Quote(%q): got %s want %s", qt.in, got, qt.quoted)
			continue
		}
		back, err := Unquote(got)
		if err != nil {
			t.Errorf("Unquote(%s): %v", got, err)
			continue
		}
		if back != qt.in {
			t.Errorf("Unquote(Quote(%q)) = %q", qt.in, back)
		}
	}
}

func TestUnquoteEscapes(t *testing.T) {
	uts := []struct {
		in  string
		out string
	}{
		{in: `"A"`, out: "A"},
		{in: `"é"`, out: "é"},
		{in: `"\t\n\r\b\f\/\\\""`, out: "\t\n\r\b\f/\\\""},
		// a decoded \n must not be re-decoded
		{in: `"\\n"`, out: `\n`},
		{in: `"\\\\t"`, out: `\\t`},
	}
	for _, ut := range uts {
		got, err := Unquote(ut.in)
		if err != nil {
			t.Errorf("Unquote(%s): %v", ut.in, err)
			continue
		}
		if got != ut.out {
			t.Errorf("Unquote(%s): got %q want %q", ut.in, got, ut.out)
		}
	}
}

func TestUnquoteErrs(t *testing.T) {
	ets := []struct {
		in string
		e  error
	}{
		{in: `"abc`, e: ErrUnterminated},
		{in: `"ab\q"`, e: ErrBadEscape},
		{in: `"ab\uzzzz"`, e: ErrBadUnicode},
		{in: `"ab\u00"`, e: ErrUnterminated},
		{in: "\"a\nb\"", e: ErrUnicodeControl},
	}
	for _, et := range ets {
		_, err := Unquote(et.in)
		if err == nil {
			t.Errorf("Unquote(%q): expected error", et.in)
			continue
		}
		if !errors.Is(err, et.e) {
			t.Errorf("Unquote(%q): got %v want %v", et.in, err, et.e)
		}
	}
}

func TestQuotedSpanFastPath(t *testing.T) {
	n, esc, err := QuotedSpan([]byte(`"plain" trailing`))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(`"plain"`) {
		t.Errorf("span %d", n)
	}
	if esc {
		t.Errorf("unexpected escape flag")
	}
	n, esc, err = QuotedSpan([]byte(`"with \" escape" x`))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(`"with \" escape"`) {
		t.Errorf("span %d", n)
	}
	if !esc {
		t.Errorf("expected escape flag")
	}
}
