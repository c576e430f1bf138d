package number

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// All three types encode as the bare number. Decoders route the number
// through the type's constructor, so an out-of-range input is clamped or
// wrapped, never rejected.

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseFloat accepts any decimal float. Magnitudes beyond float64 become
// ±Inf and are left to the constructor to normalize.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return f, nil
}

// ParseUnipolar parses s as a float and clamps it to [0, 1].
func ParseUnipolar(s string) (UnipolarFloat, error) {
	f, err := parseFloat(s)
	if err != nil {
		return UnipolarZero, err
	}
	return NewUnipolar(f), nil
}

// ParseBipolar parses s as a float and clamps it to [-1, 1].
func ParseBipolar(s string) (BipolarFloat, error) {
	f, err := parseFloat(s)
	if err != nil {
		return BipolarZero, err
	}
	return NewBipolar(f), nil
}

// ParsePhase parses s as a float and wraps it onto [0, 1).
func ParsePhase(s string) (Phase, error) {
	f, err := parseFloat(s)
	if err != nil {
		return PhaseZero, err
	}
	return NewPhase(f), nil
}

func decodeJSON(data []byte, set func(float64)) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, err)
	}
	set(f)
	return nil
}

func decodeYAML(node *yaml.Node, set func(float64)) error {
	if node.ShortTag() == "!!null" {
		return nil
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, err)
	}
	set(f)
	return nil
}

func decodeText(text []byte, set func(float64)) error {
	f, err := parseFloat(string(text))
	if err != nil {
		return err
	}
	set(f)
	return nil
}

func scanFloat(src any, set func(float64)) error {
	var f float64
	switch v := src.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int64:
		f = float64(v)
	case []byte:
		return decodeText(v, set)
	case string:
		return decodeText([]byte(v), set)
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidValue)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, src)
	}
	set(f)
	return nil
}

// UnipolarFloat codecs.

func (u UnipolarFloat) MarshalJSON() ([]byte, error) { return json.Marshal(u.v) }

func (u *UnipolarFloat) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, u.set)
}

func (u UnipolarFloat) MarshalYAML() (any, error) { return u.v, nil }

func (u *UnipolarFloat) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, u.set)
}

func (u UnipolarFloat) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *UnipolarFloat) UnmarshalText(text []byte) error {
	return decodeText(text, u.set)
}

// Value implements driver.Valuer.
func (u UnipolarFloat) Value() (driver.Value, error) { return u.v, nil }

// Scan implements sql.Scanner.
func (u *UnipolarFloat) Scan(src any) error { return scanFloat(src, u.set) }

func (u *UnipolarFloat) set(f float64) { *u = NewUnipolar(f) }

// BipolarFloat codecs.

func (b BipolarFloat) MarshalJSON() ([]byte, error) { return json.Marshal(b.v) }

func (b *BipolarFloat) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, b.set)
}

func (b BipolarFloat) MarshalYAML() (any, error) { return b.v, nil }

func (b *BipolarFloat) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, b.set)
}

func (b BipolarFloat) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BipolarFloat) UnmarshalText(text []byte) error {
	return decodeText(text, b.set)
}

func (b BipolarFloat) Value() (driver.Value, error) { return b.v, nil }

func (b *BipolarFloat) Scan(src any) error { return scanFloat(src, b.set) }

func (b *BipolarFloat) set(f float64) { *b = NewBipolar(f) }

// Phase codecs.

func (p Phase) MarshalJSON() ([]byte, error) { return json.Marshal(p.v) }

func (p *Phase) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, p.set)
}

func (p Phase) MarshalYAML() (any, error) { return p.v, nil }

func (p *Phase) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, p.set)
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Phase) UnmarshalText(text []byte) error {
	return decodeText(text, p.set)
}

func (p Phase) Value() (driver.Value, error) { return p.v, nil }

func (p *Phase) Scan(src any) error { return scanFloat(src, p.set) }

func (p *Phase) set(f float64) { *p = NewPhase(f) }
