package survey

import "strings"

// Response is one allowed value of a categorical (Likert) scale.
type Response string

const (
	StronglyAgree    Response = "Strongly Agree"
	Agree            Response = "Agree"
	Neutral          Response = "Neutral"
	Disagree         Response = "Disagree"
	StronglyDisagree Response = "Strongly Disagree"
)

// Scale is an ordered enumeration of allowed responses.
type Scale []Response

// LikertScale is the five-point agreement scale shared by every report variant,
// ordered from positive to negative sentiment.
var LikertScale = Scale{StronglyAgree, Agree, Neutral, Disagree, StronglyDisagree}

// Match returns the scale value equal to the trimmed raw cell. Matching is exact
// and case-sensitive: " agree " does not match Agree.
func (s Scale) Match(raw string) (Response, bool) {
	v := strings.TrimSpace(raw)
	for _, r := range s {
		if string(r) == v {
			return r, true
		}
	}
	return "", false
}

// Index returns the position of r in the scale, or -1.
func (s Scale) Index(r Response) int {
	for i, v := range s {
		if v == r {
			return i
		}
	}
	return -1
}

// Labels returns the scale values as plain strings, in order.
func (s Scale) Labels() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}
