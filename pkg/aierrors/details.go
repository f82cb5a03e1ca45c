// Structured upstream error detail records
package aierrors

import "encoding/json"

// ErrorDetail describes a single upstream-reported error cause attached to a
// bad-response error. The four named fields mirror the detail records the
// API returns alongside RPC failures; any additional string-keyed fields are
// preserved in Extra so nothing the server sent is lost.
type ErrorDetail struct {
	Type     string         `json:"@type,omitempty"`
	Reason   string         `json:"reason,omitempty"`
	Domain   string         `json:"domain,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`

	// Extra holds unrecognized fields carried through from the upstream
	// detail record. Keys never collide with the named fields above.
	Extra map[string]any `json:"-"`
}

// detailJSON mirrors the recognized fields for (un)marshaling.
type detailJSON struct {
	Type     string         `json:"@type,omitempty"`
	Reason   string         `json:"reason,omitempty"`
	Domain   string         `json:"domain,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

var (
	_ json.Marshaler   = ErrorDetail{}
	_ json.Unmarshaler = (*ErrorDetail)(nil)
)

// MarshalJSON flattens the recognized fields and Extra into one object.
func (d ErrorDetail) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(d.Extra)+4)
	for k, v := range d.Extra {
		obj[k] = v
	}
	if d.Type != "" {
		obj["@type"] = d.Type
	}
	if d.Reason != "" {
		obj["reason"] = d.Reason
	}
	if d.Domain != "" {
		obj["domain"] = d.Domain
	}
	if len(d.Metadata) > 0 {
		obj["metadata"] = d.Metadata
	}
	return json.Marshal(obj)
}

// UnmarshalJSON splits an object into the recognized fields and Extra.
func (d *ErrorDetail) UnmarshalJSON(data []byte) error {
	var known detailJSON
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	delete(raw, "@type")
	delete(raw, "reason")
	delete(raw, "domain")
	delete(raw, "metadata")

	d.Type = known.Type
	d.Reason = known.Reason
	d.Domain = known.Domain
	d.Metadata = known.Metadata
	if len(raw) > 0 {
		d.Extra = raw
	} else {
		d.Extra = nil
	}
	return nil
}

// DetailFromMap builds an ErrorDetail from a decoded upstream detail object,
// splitting the recognized fields from the rest.
func DetailFromMap(m map[string]any) ErrorDetail {
	var d ErrorDetail
	for k, v := range m {
		switch k {
		case "@type":
			if s, ok := v.(string); ok {
				d.Type = s
				continue
			}
		case "reason":
			if s, ok := v.(string); ok {
				d.Reason = s
				continue
			}
		case "domain":
			if s, ok := v.(string); ok {
				d.Domain = s
				continue
			}
		case "metadata":
			if mm, ok := v.(map[string]any); ok {
				d.Metadata = mm
				continue
			}
		}
		if d.Extra == nil {
			d.Extra = make(map[string]any)
		}
		d.Extra[k] = v
	}
	return d
}
