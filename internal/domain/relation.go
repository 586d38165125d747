package domain

import "fmt"

// EndpointKind identifies which boundary of a task an anchor refers to.
type EndpointKind string

const (
	EndpointStart EndpointKind = "S"
	EndpointEnd   EndpointKind = "E"
)

// Valid reports whether e is one of the two endpoint kinds.
func (e EndpointKind) Valid() bool {
	return e == EndpointStart || e == EndpointEnd
}

func (e EndpointKind) String() string {
	switch e {
	case EndpointStart:
		return "start"
	case EndpointEnd:
		return "end"
	default:
		return string(e)
	}
}

// RelationKind says which endpoint of the predecessor constrains which
// endpoint of the successor.
type RelationKind string

const (
	FinishToStart  RelationKind = "FS"
	StartToStart   RelationKind = "SS"
	FinishToFinish RelationKind = "FF"
	StartToFinish  RelationKind = "SF"
)

// RelationKinds lists every relation kind in display order.
var RelationKinds = []RelationKind{FinishToStart, StartToStart, FinishToFinish, StartToFinish}

// RelationFromEndpoints maps a (source, target) endpoint pair to its relation
// kind. The mapping is total over valid endpoints; anything else is rejected.
func RelationFromEndpoints(from, to EndpointKind) (RelationKind, error) {
	switch {
	case from == EndpointEnd && to == EndpointStart:
		return FinishToStart, nil
	case from == EndpointStart && to == EndpointStart:
		return StartToStart, nil
	case from == EndpointEnd && to == EndpointEnd:
		return FinishToFinish, nil
	case from == EndpointStart && to == EndpointEnd:
		return StartToFinish, nil
	}
	return "", fmt.Errorf("%w: %q -> %q", ErrInvalidEndpoint, from, to)
}

// ParseRelationKind accepts the two-letter codes FS, SS, FF and SF.
func ParseRelationKind(s string) (RelationKind, error) {
	k := RelationKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q (expected FS, SS, FF or SF)", ErrInvalidRelation, s)
	}
	return k, nil
}

// Valid reports whether k is one of the four relation kinds.
func (k RelationKind) Valid() bool {
	switch k {
	case FinishToStart, StartToStart, FinishToFinish, StartToFinish:
		return true
	}
	return false
}

// Endpoints returns the predecessor endpoint and the successor endpoint the
// relation connects.
func (k RelationKind) Endpoints() (from, to EndpointKind) {
	switch k {
	case FinishToStart:
		return EndpointEnd, EndpointStart
	case StartToStart:
		return EndpointStart, EndpointStart
	case FinishToFinish:
		return EndpointEnd, EndpointEnd
	case StartToFinish:
		return EndpointStart, EndpointEnd
	}
	return "", ""
}

// Label is the human-readable name, e.g. "Finish→Start".
func (k RelationKind) Label() string {
	switch k {
	case FinishToStart:
		return "Finish→Start"
	case StartToStart:
		return "Start→Start"
	case FinishToFinish:
		return "Finish→Finish"
	case StartToFinish:
		return "Start→Finish"
	}
	return string(k)
}
