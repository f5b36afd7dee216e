package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/javiermolinar/slotshare/internal/slot"
)

const (
	// TickDuration is the quantum of link encoding. Offsets below it are
	// floored away, so a link round trip is exact only for aligned slots.
	TickDuration = 30 * time.Minute

	// Param is the query parameter carrying the encoded schedule.
	Param = "events"

	pairSep  = "-"
	slotSep  = ","
	tickMsec = int64(TickDuration / time.Millisecond)
)

// ErrBeforeEpoch is returned for instants that have no non-negative tick.
var ErrBeforeEpoch = errors.New("instant is before the Unix epoch")

// Tick returns the index of the 30-minute quantum containing t.
func Tick(t time.Time) (uint64, error) {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0, fmt.Errorf("%w: %s", ErrBeforeEpoch, t.Format(time.RFC3339))
	}
	return uint64(ms / tickMsec), nil
}

// TickTime returns the instant a tick starts at, in loc.
func TickTime(tick uint64, loc *time.Location) time.Time {
	return time.UnixMilli(int64(tick) * tickMsec).In(loc)
}

// Encode serializes intervals as "<start>-<end>" token pairs joined by ",".
func Encode(intervals []slot.Interval) (string, error) {
	parts := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		start, err := Tick(iv.Start)
		if err != nil {
			return "", err
		}
		end, err := Tick(iv.End)
		if err != nil {
			return "", err
		}
		parts = append(parts, EncodeBase64(start)+pairSep+EncodeBase64(end))
	}
	return strings.Join(parts, slotSep), nil
}

// Decode parses a value produced by Encode. Intervals are returned in loc and
// in encoded order. Any malformed slot fails the whole value.
func Decode(s string, loc *time.Location) ([]slot.Interval, error) {
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	parts := strings.Split(s, slotSep)
	out := make([]slot.Interval, 0, len(parts))
	offset := 0
	for _, part := range parts {
		start, end, err := decodePair(part)
		if err != nil {
			return nil, rebase(err, s, offset)
		}
		out = append(out, slot.Interval{
			Start: TickTime(start, loc),
			End:   TickTime(end, loc),
		})
		offset += len(part) + len(slotSep)
	}
	return out, nil
}

// decodePair splits one "<start>-<end>" slot. Because '-' is also a symbol
// of the alphabet, a slot may contain several dashes; the split chosen is the
// one that is not reversed, preferring equal-length tokens, then the leftmost.
func decodePair(part string) (start, end uint64, err error) {
	cuts := dashPositions(part)
	switch len(cuts) {
	case 0:
		return 0, 0, &DecodeError{Input: part, Pos: -1, Err: ErrMalformedPair}
	case 1:
		start, end, err = splitAt(part, cuts[0])
		if err == nil && start > end {
			err = &DecodeError{Input: part, Pos: cuts[0], Err: ErrReversedSlot}
		}
		return start, end, err
	}

	best, bestBalanced := -1, false
	for _, cut := range cuts {
		s, e, err := splitAt(part, cut)
		if err != nil || s > e {
			continue
		}
		balanced := cut == len(part)-cut-1
		if best < 0 || (balanced && !bestBalanced) {
			best, bestBalanced = cut, balanced
		}
	}
	if best < 0 {
		return 0, 0, &DecodeError{Input: part, Pos: -1, Err: ErrMalformedPair}
	}
	return splitAt(part, best)
}

func dashPositions(part string) []int {
	var cuts []int
	for i := 0; i < len(part); i++ {
		if part[i] == pairSep[0] {
			cuts = append(cuts, i)
		}
	}
	return cuts
}

func splitAt(part string, cut int) (start, end uint64, err error) {
	start, err = DecodeBase64(part[:cut])
	if err != nil {
		return 0, 0, err
	}
	end, err = DecodeBase64(part[cut+1:])
	if err != nil {
		return 0, 0, rebase(err, part, cut+1)
	}
	return start, end, nil
}

// rebase reports a token-level error against the enclosing input.
func rebase(err error, input string, offset int) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return err
	}
	pos := -1
	if de.Pos >= 0 {
		pos = offset + de.Pos
	}
	return &DecodeError{Input: input, Pos: pos, Err: de.Err}
}

// BuildURL returns base with the events parameter set to encoded. Any
// query or fragment already on base is dropped.
func BuildURL(base, encoded string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	// The alphabet and separators are URL-safe, so the value is kept verbatim.
	return u.String() + "?" + Param + "=" + encoded, nil
}

// ParseURL extracts the events value from a full link, a link pasted without
// its scheme, a bare query string ("?events=..." or "events=...") or a raw
// encoded value. '?' is outside the alphabet, so any input holding one has a
// query part.
func ParseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	query, isQuery := "", false
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return "", &DecodeError{Input: raw, Pos: -1, Err: err}
		}
		query, isQuery = u.RawQuery, true
	case strings.Contains(raw, "?"):
		_, query, _ = strings.Cut(raw, "?")
		query, _, _ = strings.Cut(query, "#")
		isQuery = true
	case strings.HasPrefix(raw, Param+"="):
		query, isQuery = raw, true
	}
	if !isQuery {
		return raw, nil
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return "", &DecodeError{Input: raw, Pos: -1, Err: err}
	}
	if !values.Has(Param) {
		return "", &DecodeError{Input: raw, Pos: -1, Err: ErrNoEvents}
	}
	return values.Get(Param), nil
}
