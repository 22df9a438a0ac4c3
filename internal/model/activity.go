package model

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/sjson"
)

// Activity is an extracurricular offering identified by its unique name.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityDetails is an Activity without its identity, as listed to clients.
type ActivityDetails struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityDirectory maps activity names to their details. It marshals to a
// JSON object whose keys keep the order in which the store returned them.
type ActivityDirectory struct {
	names   []string
	details map[string]*ActivityDetails
}

func NewActivityDirectory(capacity int) *ActivityDirectory {
	return &ActivityDirectory{
		names:   make([]string, 0, capacity),
		details: make(map[string]*ActivityDetails, capacity),
	}
}

// Put adds or replaces the details of name. New names are appended to the key order.
func (d *ActivityDirectory) Put(name string, details *ActivityDetails) {
	if _, ok := d.details[name]; !ok {
		d.names = append(d.names, name)
	}
	d.details[name] = details
}

func (d *ActivityDirectory) Get(name string) (*ActivityDetails, bool) {
	details, ok := d.details[name]
	return details, ok
}

func (d *ActivityDirectory) Names() []string {
	return append([]string(nil), d.names...)
}

func (d *ActivityDirectory) Len() int {
	return len(d.names)
}

func (d ActivityDirectory) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, name := range d.names {
		value, err := json.Marshal(d.details[name])
		if err != nil {
			return nil, err
		}
		// sjson appends new keys at the end of the object
		out, err = sjson.SetRawBytes(out, keyPath(name), value)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// keyPath escapes name into a single-key sjson path. Names made of digits
// only are forced to object keys.
func keyPath(name string) string {
	var b strings.Builder
	if name != "" && strings.Trim(name, "0123456789") == "" {
		b.WriteByte(':')
	}
	for _, r := range name {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', ':', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
