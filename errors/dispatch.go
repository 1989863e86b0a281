package errors

import (
	"fmt"
)

// UnhandledLogMessage is the log message of the InternalServerError the
// dispatcher manufactures for unrecognized values.
const UnhandledLogMessage = "Unhandled Error"

// Response is the dispatcher's output: the status to write and the body to
// encode. Err is the recognized or manufactured ServiceError, kept for
// diagnostics and never written to the client.
type Response struct {
	Status int
	Body   Envelope
	Err    ServiceError
}

// WithoutDetails returns a copy of r with the body's details removed.
func (r Response) WithoutDetails() Response {
	r.Body = r.Body.WithoutDetails()
	return r
}

// Classify reports which variant v is. Values that are not errors, do not
// carry a ServiceError in their chain, or claim a client kind without the
// ClientError marker classify as KindUnknown with a nil ServiceError.
func Classify(v any) (ServiceError, Kind) {
	err, ok := v.(error)
	if !ok || err == nil {
		return nil, KindUnknown
	}
	se, ok := AsServiceError(err)
	if !ok {
		return nil, KindUnknown
	}
	kind := se.Kind()
	if kind.IsClient() {
		if _, marked := se.(ClientError); !marked {
			return nil, KindUnknown
		}
	}
	return se, kind
}

// Dispatch converts any raised value into exactly one Response. Recognized
// client and server errors keep their status and records; everything else,
// including plain errors, strings and panic payloads, collapses into a
// generic 500 whose cause is kept only on Response.Err. Dispatch never panics.
func Dispatch(v any) Response {
	se, kind := Classify(v)
	switch kind {
	case KindNotFound, KindUnauthorized, KindForbidden, KindUnprocessableEntity,
		KindRequestDataValidation, KindClient, KindInternalServer:
		if resp, ok := respond(se); ok {
			return resp
		}
	case KindUnknown:
	}
	return unhandled(v)
}

// respond serializes a recognized error. It reports false when the error
// violates its contract (panics or yields no records).
func respond(se ServiceError) (resp Response, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	records := se.SerializeErrors()
	if len(records) == 0 {
		return Response{}, false
	}
	return Response{Status: se.Code(), Body: Envelope{Errors: records}, Err: se}, true
}

func unhandled(v any) Response {
	ise := Internal(UnhandledLogMessage, causeOf(v))
	return Response{Status: ise.Code(), Body: ToJSON(ise), Err: ise}
}

func causeOf(v any) error {
	if err, ok := v.(error); ok && err != nil {
		return err
	}
	return fmt.Errorf("%v", v)
}
