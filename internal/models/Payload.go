package models

// RawEntry is one decoded JSON object from the OpenWeatherMap API, either an
// element of the forecast "list" or the whole current-conditions document.
type RawEntry map[string]any

// Payload is the shape of an API response, decided once when the body is
// decoded. It is either a ForecastPayload or a CurrentPayload.
type Payload interface {
	payload()
}

// ForecastPayload is a multi-point forecast response.
type ForecastPayload struct {
	Entries []RawEntry
}

// CurrentPayload is a single-point current-conditions response.
type CurrentPayload struct {
	Record RawEntry
}

func (ForecastPayload) payload() {}
func (CurrentPayload) payload()  {}

const forecastListKey = "list"

// NewPayload classifies a decoded response. A document carrying a "list" key is
// a forecast even when the list is null or empty; list elements that are not
// objects are kept as empty entries so that source order and count survive.
func NewPayload(doc map[string]any) Payload {
	list, ok := doc[forecastListKey]
	if !ok {
		return CurrentPayload{Record: RawEntry(doc)}
	}

	items, _ := list.([]any)
	entries := make([]RawEntry, 0, len(items))
	for _, item := range items {
		entry, _ := item.(map[string]any)
		entries = append(entries, RawEntry(entry))
	}

	return ForecastPayload{Entries: entries}
}

// Object returns the nested object stored under key, or nil.
func (e RawEntry) Object(key string) RawEntry {
	v, _ := e[key].(map[string]any)
	return RawEntry(v)
}

// FirstObject returns the first element of the array stored under key when it
// is an object, or nil.
func (e RawEntry) FirstObject(key string) RawEntry {
	arr, _ := e[key].([]any)
	if len(arr) == 0 {
		return nil
	}
	v, _ := arr[0].(map[string]any)
	return RawEntry(v)
}

// Float returns the numeric value stored under key, or nil when it is absent or
// not a number.
func (e RawEntry) Float(key string) *float64 {
	v, ok := e[key].(float64)
	if !ok {
		return nil
	}
	return &v
}

// Int returns the integral value stored under key, or nil.
func (e RawEntry) Int(key string) *int64 {
	v, ok := e[key].(float64)
	if !ok {
		return nil
	}
	i := int64(v)
	return &i
}

// String returns the string stored under key, or nil.
func (e RawEntry) String(key string) *string {
	v, ok := e[key].(string)
	if !ok {
		return nil
	}
	return &v
}
