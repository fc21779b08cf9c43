package percentencoding_test

import (
	"testing"

	"github.com/hueristiq/hq-go-weburl/percentencoding"
)

func TestMeasureAndEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
		set  *percentencoding.EncodeSet
		want string
	}{
		{"fragment no special bytes", "hello", percentencoding.Fragment(), "hello"},
		{"fragment space", "a b", percentencoding.Fragment(), "a%20b"},
		{"path question mark", "a?b", percentencoding.Path(), "a%3Fb"},
		{"userinfo at sign", "a@b", percentencoding.UserInfo(), "a%40b"},
		{"component comma", "a,b", percentencoding.Component(), "a%2Cb"},
		{"form space becomes plus", "hello, world!", percentencoding.Form(), "hello%2C+world%21"},
		{"non-ascii always encoded", "café", percentencoding.Fragment(), "caf%C3%A9"},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			n, transformed := percentencoding.Measure([]byte(c.src), c.set)
			if n != len(c.want) {
				t.Errorf("Measure(%q) length = %d, want %d", c.src, n, len(c.want))
			}

			if c.src != c.want && !transformed {
				t.Errorf("Measure(%q) transformed = false, want true", c.src)
			}

			got := percentencoding.Encode([]byte(c.src), c.set)
			if got != c.want {
				t.Errorf("Encode(%q) = %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
		set  *percentencoding.EncodeSet
		want string
	}{
		{"plain passthrough", "hello", nil, "hello"},
		{"simple escape", "a%20b", nil, "a b"},
		{"lowercase hex", "a%2fb", nil, "a/b"},
		{"malformed percent at end", "a%2", nil, "a%2"},
		{"malformed percent not hex", "a%zzb", nil, "a%zzb"},
		{"form plus becomes space", "hello%2C+world%21", percentencoding.Form(), "hello, world!"},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := percentencoding.Decode([]byte(c.src), c.set)
			if got != c.want {
				t.Errorf("Decode(%q) = %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	sets := []*percentencoding.EncodeSet{
		percentencoding.Fragment(),
		percentencoding.Query(),
		percentencoding.SpecialQuery(),
		percentencoding.Path(),
		percentencoding.UserInfo(),
		percentencoding.Component(),
		percentencoding.Form(),
	}

	inputs := []string{
		"",
		"hello world",
		"hello, world!",
		"a/b?c#d@e:f",
		"café 中文",
	}

	for _, set := range sets {
		for _, in := range inputs {
			encoded := percentencoding.Encode([]byte(in), set)
			decoded := percentencoding.Decode([]byte(encoded), set)

			if decoded != in {
				t.Errorf("round trip failed: in=%q encoded=%q decoded=%q", in, encoded, decoded)
			}
		}
	}
}

func TestEncoderMatchesEncode(t *testing.T) {
	t.Parallel()

	src := []byte("hello, world! café")
	set := percentencoding.Component()

	var buf []byte

	enc := percentencoding.NewEncoder(src, set)

	for {
		b, ok := enc.Next()
		if !ok {
			break
		}

		buf = append(buf, b)
	}

	want := percentencoding.Encode(src, set)
	if string(buf) != want {
		t.Errorf("Encoder output = %q, want %q", buf, want)
	}
}
