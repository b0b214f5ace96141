package entities

// UpstreamResponse is a normalized ERP response.
//
// StatusCode is the ERP's HTTP status, passed through verbatim. Body is always a
// JSON object: when the ERP answers with something that is not an object (an
// HTML error page, plain text, a bare JSON value) the raw content is wrapped as
// {"message": <content>} and Parsed is false.
type UpstreamResponse struct {
	StatusCode int
	Body       map[string]any
	Raw        []byte
	Parsed     bool
}

func (r UpstreamResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
