package pco

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ID is a Planning Center resource id. The API sends ids as JSON strings.
type ID int64

// ParseID parses a decimal id.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return ID(n), nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	n, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = n
	return nil
}

const dateLayout = "2006-01-02"

// Date is a calendar date without a time of day, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Identifier is a JSON:API resource identifier.
type Identifier struct {
	Type string `json:"type"`
	ID   ID     `json:"id"`
}

// Kind names the resource type a Ref points at.
type Kind interface {
	Kind() string
}

// Ref is a typed reference to a related resource. Decoding a Ref whose
// payload carries a different type fails with a *KindError.
type Ref[K Kind] struct {
	ID ID
}

// Type returns the resource type this reference expects.
func (r Ref[K]) Type() string {
	var k K
	return k.Kind()
}

// Identifier returns the reference as a resource identifier.
func (r Ref[K]) Identifier() Identifier {
	return Identifier{Type: r.Type(), ID: r.ID}
}

// Relationship returns a to-one relationship pointing at r.
func (r Ref[K]) Relationship() Relationship {
	return One(r.Type(), r.ID)
}

func (r Ref[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Identifier())
}

func (r *Ref[K]) UnmarshalJSON(b []byte) error {
	var ident Identifier
	if err := json.Unmarshal(b, &ident); err != nil {
		return err
	}
	if want := r.Type(); ident.Type != "" && ident.Type != want {
		return &KindError{Want: want, Got: ident.Type}
	}
	r.ID = ident.ID
	return nil
}

// IDs returns the ids of refs in order.
func IDs[K Kind](refs []Ref[K]) []ID {
	ids := make([]ID, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	return ids
}
