package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// EntityRef is an entity id in a request body. Clients send it either as a
// JSON integer or as a numeric string; null and an absent field leave it
// unset.
type EntityRef struct {
	id  int
	set bool
}

func NewEntityRef(id int) EntityRef { return EntityRef{id: id, set: true} }

// Get returns the id and whether one was supplied.
func (e EntityRef) Get() (int, bool) { return e.id, e.set }

func (e *EntityRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*e = EntityRef{}
		return nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*e = EntityRef{}
			return nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			return fmt.Errorf("entity id %s is not an integer", string(b))
		}
		n = int(f)
	}
	*e = EntityRef{id: n, set: true}
	return nil
}

func (e EntityRef) MarshalJSON() ([]byte, error) {
	if !e.set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(e.id)), nil
}
