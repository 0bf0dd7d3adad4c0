package models

import "encoding/json"

// OptionalID distinguishes the three states a nullable reference can take
// in a JSON body: key absent (Set false), explicit null (Set true, Value
// nil) and a value. Plain *int64 fields collapse the first two.
type OptionalID struct {
	Set   bool
	Value *int64
}

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}
