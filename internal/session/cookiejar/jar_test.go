package cookiejar

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"tienda/internal/platform/storage"
)

// =============================================================================
// Credential Jar Suite
// =============================================================================

type JarSuite struct {
	suite.Suite
	kv  *storage.Memory
	jar *Jar
	u   *url.URL
}

func TestJarSuite(t *testing.T) {
	suite.Run(t, new(JarSuite))
}

func (s *JarSuite) SetupTest() {
	s.kv = storage.NewMemory()
	s.jar = New(s.kv, nil)
	s.u = &url.URL{Scheme: "https", Host: "api.tienda.example.com"}
}

func (s *JarSuite) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Domain:   "api.tienda.example.com",
		Path:     "/",
		Expires:  time.Now().Add(ttl).Truncate(time.Second),
		Secure:   true,
		HttpOnly: true,
	}
}

func (s *JarSuite) TestRoundTrip() {
	in := []*http.Cookie{
		s.cookie("session_id", "abc123", time.Hour),
		s.cookie("csrf", "tok=en", time.Hour), // value with '=' must survive
	}
	s.jar.SetCookies(s.u, in)

	got := s.jar.Cookies(s.u)
	s.Require().Len(got, 2)
	s.Equal("session_id", got[0].Name)
	s.Equal("abc123", got[0].Value)
	s.Equal("csrf", got[1].Name)
	s.Equal("tok=en", got[1].Value)
	s.True(got[0].Secure)
	s.True(got[0].HttpOnly)
}

func (s *JarSuite) TestRoundTripAcrossRestart() {
	in := []*http.Cookie{s.cookie("session_id", "abc123", time.Hour)}
	s.jar.SetCookies(s.u, in)

	// A new jar over the same KV simulates a process restart.
	reborn := New(s.kv, nil)
	got := reborn.Cookies(s.u)
	s.Require().Len(got, 1)
	s.Equal("session_id", got[0].Name)
	s.Equal("abc123", got[0].Value)
	s.Equal("/", got[0].Path)
	s.Equal("api.tienda.example.com", got[0].Domain)
	s.Equal(in[0].Expires.Unix(), got[0].Expires.Unix())
}

func (s *JarSuite) TestExpiredCookiesFilteredAtRead() {
	s.jar.SetCookies(s.u, []*http.Cookie{
		s.cookie("fresh", "ok", time.Hour),
		s.cookie("stale", "old", -time.Minute),
	})

	got := s.jar.Cookies(s.u)
	s.Require().Len(got, 1)
	s.Equal("fresh", got[0].Name)
}

func (s *JarSuite) TestSetCookiesReplacesWholesale() {
	s.jar.SetCookies(s.u, []*http.Cookie{
		s.cookie("first", "1", time.Hour),
		s.cookie("second", "2", time.Hour),
	})
	s.jar.SetCookies(s.u, []*http.Cookie{s.cookie("third", "3", time.Hour)})

	got := s.jar.Cookies(s.u)
	s.Require().Len(got, 1)
	s.Equal("third", got[0].Name)
}

func (s *JarSuite) TestHostsAreIndependent() {
	other := &url.URL{Scheme: "https", Host: "cdn.tienda.example.com"}
	s.jar.SetCookies(s.u, []*http.Cookie{s.cookie("api", "1", time.Hour)})
	s.jar.SetCookies(other, []*http.Cookie{s.cookie("cdn", "2", time.Hour)})

	s.Len(s.jar.Cookies(s.u), 1)
	s.Len(s.jar.Cookies(other), 1)
	s.Equal("api", s.jar.Cookies(s.u)[0].Name)
}

func (s *JarSuite) TestClear() {
	s.jar.SetCookies(s.u, []*http.Cookie{s.cookie("session_id", "abc", time.Hour)})
	s.Require().NoError(s.jar.Clear())

	s.Empty(s.jar.Cookies(s.u))

	reborn := New(s.kv, nil)
	s.Empty(reborn.Cookies(s.u), "clear must also empty durable state")
}

// =============================================================================
// Corrupt record handling
// =============================================================================

func (s *JarSuite) TestCorruptRecordSkippedOnLoad() {
	future := time.Now().Add(time.Hour).Unix()
	valid1 := "a=1|api.tienda.example.com|/|" + itoa(future) + "|true|true"
	valid2 := "b=2|api.tienda.example.com|/|" + itoa(future) + "|false|false"
	corrupt := "garbage-without-fields"

	raw := valid1 + recordSep + corrupt + recordSep + valid2
	s.Require().NoError(s.kv.Put("cookies", "api.tienda.example.com", raw))

	jar := New(s.kv, nil)
	got := jar.Cookies(s.u)
	s.Require().Len(got, 2, "one corrupt record must not take down its neighbors")
	s.Equal("a", got[0].Name)
	s.Equal("b", got[1].Name)
}

func (s *JarSuite) TestMalformedExpiryAndFlagsSkipped() {
	future := time.Now().Add(time.Hour).Unix()
	cases := []string{
		"a=1|d|/|not-a-number|true|true",
		"b=2|d|/|" + itoa(future) + "|maybe|true",
		"c=3|d|/|" + itoa(future) + "|true|maybe",
		"=novalue|d|/|" + itoa(future) + "|true|true",
		"ok=4|d|/|" + itoa(future) + "|true|true",
	}
	raw := cases[0]
	for _, c := range cases[1:] {
		raw += recordSep + c
	}
	s.Require().NoError(s.kv.Put("cookies", "api.tienda.example.com", raw))

	jar := New(s.kv, nil)
	got := jar.Cookies(s.u)
	s.Require().Len(got, 1)
	s.Equal("ok", got[0].Name)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
