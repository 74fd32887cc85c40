package models

// JSONValue is the intermediate form every conversion passes through.
// It is one of JSONNull, JSONBool, JSONNumber, JSONString, JSONArray or
// *JSONObject; the unexported method keeps the set closed.
type JSONValue interface {
	isJSONValue()
}

// JSONNull represents the JSON null literal.
type JSONNull struct{}

// JSONBool represents a JSON boolean.
type JSONBool bool

// JSONNumber represents a JSON number with IEEE 754 double semantics.
type JSONNumber float64

// JSONString represents a JSON string.
type JSONString string

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// JSONObject represents a JSON object. Member order is insertion order and
// is preserved when the object is serialized again.
type JSONObject struct {
	keys   []string
	values map[string]JSONValue
}

func (JSONNull) isJSONValue()    {}
func (JSONBool) isJSONValue()    {}
func (JSONNumber) isJSONValue()  {}
func (JSONString) isJSONValue()  {}
func (JSONArray) isJSONValue()   {}
func (*JSONObject) isJSONValue() {}

// NewJSONObject creates an empty object.
func NewJSONObject() *JSONObject {
	return &JSONObject{values: make(map[string]JSONValue)}
}

// Set stores value under key. Setting an existing key replaces its value
// but keeps the key at its original position.
func (o *JSONObject) Set(key string, value JSONValue) {
	if o.values == nil {
		o.values = make(map[string]JSONValue)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *JSONObject) Get(key string) (JSONValue, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the member names in insertion order.
func (o *JSONObject) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of members.
func (o *JSONObject) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value JSONValue
}

// Members returns the object's members in insertion order.
func (o *JSONObject) Members() []Member {
	if o == nil {
		return nil
	}
	members := make([]Member, 0, len(o.keys))
	for _, k := range o.keys {
		members = append(members, Member{Key: k, Value: o.values[k]})
	}
	return members
}

// IsContainer reports whether v is an array or an object.
func IsContainer(v JSONValue) bool {
	switch v.(type) {
	case JSONArray, *JSONObject:
		return true
	default:
		return false
	}
}
