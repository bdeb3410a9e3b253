// Package cookiejar persists per-host session cookies across process
// restarts. It implements net/http.CookieJar so the HTTP client attaches
// and captures credentials without the data layer touching headers.
package cookiejar

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"tienda/internal/platform/storage"
)

const (
	namespace = "cookies"

	// recordSep joins serialized cookies for one host. Triple semicolon
	// keeps single semicolons inside cookie values unambiguous.
	recordSep = ";;;"
	fieldSep  = "|"
)

// Jar is a durable host-keyed cookie store. SetCookies replaces a host's
// whole set (the backend always sends the full session cookie set) and
// persists before returning; Cookies filters expired records at read time
// without mutating anything.
type Jar struct {
	mu    sync.Mutex
	kv    storage.KV
	hosts map[string][]http.Cookie
	log   *slog.Logger
	now   func() time.Time
}

// New loads the persisted cookie table. A record that fails to parse is
// skipped individually; a corrupt entry must never abort startup, it only
// forces re-authentication for that host.
func New(kv storage.KV, log *slog.Logger) *Jar {
	if log == nil {
		log = slog.Default()
	}
	j := &Jar{kv: kv, hosts: make(map[string][]http.Cookie), log: log, now: time.Now}

	stored, err := kv.All(namespace)
	if err != nil {
		log.Warn("cookiejar: load failed, starting empty", "error", err)
		return j
	}
	for host, raw := range stored {
		j.hosts[host] = parseRecords(raw)
	}
	return j
}

// Cookies returns the non-expired cookies for the URL's host.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	var out []*http.Cookie
	for i := range j.hosts[u.Hostname()] {
		c := j.hosts[u.Hostname()][i]
		if !c.Expires.After(now) {
			continue
		}
		out = append(out, &c)
	}
	return out
}

// SetCookies replaces the host's entire stored set and persists it. This is
// a full replacement, not a merge.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	if len(cookies) == 0 {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	host := u.Hostname()
	set := make([]http.Cookie, 0, len(cookies))
	records := make([]string, 0, len(cookies))
	for _, c := range cookies {
		set = append(set, *c)
		records = append(records, serialize(c))
	}
	j.hosts[host] = set

	if err := j.kv.Put(namespace, host, strings.Join(records, recordSep)); err != nil {
		j.log.Warn("cookiejar: persist failed", "host", host, "error", err)
	}
}

// Clear empties in-memory and durable state for every host.
func (j *Jar) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.hosts = make(map[string][]http.Cookie)
	return j.kv.DeleteAll(namespace)
}

// serialize flattens a cookie to name=value|domain|path|expiresAt|secure|httpOnly.
func serialize(c *http.Cookie) string {
	return fmt.Sprintf("%s=%s%s%s%s%s%s%d%s%t%s%t",
		c.Name, c.Value,
		fieldSep, c.Domain,
		fieldSep, c.Path,
		fieldSep, c.Expires.Unix(),
		fieldSep, c.Secure,
		fieldSep, c.HttpOnly,
	)
}

// parseRecords applies the skip-and-continue load policy: each record parses
// independently and malformed ones are dropped.
func parseRecords(raw string) []http.Cookie {
	var out []http.Cookie
	for _, rec := range strings.Split(raw, recordSep) {
		c, err := parseRecord(rec)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

func parseRecord(rec string) (http.Cookie, error) {
	fields := strings.Split(rec, fieldSep)
	if len(fields) != 6 {
		return http.Cookie{}, fmt.Errorf("cookiejar: want 6 fields, got %d", len(fields))
	}

	name, value, ok := strings.Cut(fields[0], "=")
	if !ok || name == "" {
		return http.Cookie{}, fmt.Errorf("cookiejar: malformed name=value %q", fields[0])
	}

	expires, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return http.Cookie{}, fmt.Errorf("cookiejar: malformed expiry: %w", err)
	}
	secure, err := strconv.ParseBool(fields[4])
	if err != nil {
		return http.Cookie{}, fmt.Errorf("cookiejar: malformed secure flag: %w", err)
	}
	httpOnly, err := strconv.ParseBool(fields[5])
	if err != nil {
		return http.Cookie{}, fmt.Errorf("cookiejar: malformed httpOnly flag: %w", err)
	}

	return http.Cookie{
		Name:     name,
		Value:    value,
		Domain:   fields[1],
		Path:     fields[2],
		Expires:  time.Unix(expires, 0),
		Secure:   secure,
		HttpOnly: httpOnly,
	}, nil
}
