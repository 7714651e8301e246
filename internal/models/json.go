package models

import (
	"encoding/json"

	"github.com/dmitrijs2005/demomarket/internal/timex"
)

// The UnmarshalJSON methods below accept timestamps either as RFC 3339
// strings (what this package writes) or as epoch milliseconds. Encoding is
// left to the default, so anything written back uses RFC 3339.

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var aux struct {
		plain
		CreatedAt json.RawMessage `json:"created"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	created, err := timex.DecodeTime(aux.CreatedAt)
	if err != nil {
		return err
	}
	*u = User(aux.plain)
	u.CreatedAt = created
	return nil
}

func (s *Session) UnmarshalJSON(data []byte) error {
	type plain Session
	var aux struct {
		plain
		Since json.RawMessage `json:"since"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	since, err := timex.DecodeTime(aux.Since)
	if err != nil {
		return err
	}
	*s = Session(aux.plain)
	s.Since = since
	return nil
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var aux struct {
		plain
		CreatedAt json.RawMessage `json:"created"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	created, err := timex.DecodeTime(aux.CreatedAt)
	if err != nil {
		return err
	}
	*p = Product(aux.plain)
	p.CreatedAt = created
	return nil
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	var aux struct {
		plain
		CreatedAt json.RawMessage `json:"created"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	created, err := timex.DecodeTime(aux.CreatedAt)
	if err != nil {
		return err
	}
	*o = Order(aux.plain)
	o.CreatedAt = created
	return nil
}
