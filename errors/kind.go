package errors

// Kind tags the concrete variant behind a ServiceError.
type Kind int

const (
	// KindUnknown is any value that does not satisfy the ServiceError taxonomy.
	KindUnknown Kind = iota
	// KindNotFound tags NotFoundError (404).
	KindNotFound
	// KindUnauthorized tags UnauthorizedError (401).
	KindUnauthorized
	// KindForbidden tags ForbiddenError (403).
	KindForbidden
	// KindUnprocessableEntity tags UnprocessableEntityError (422).
	KindUnprocessableEntity
	// KindRequestDataValidation tags RequestDataValidationError (400).
	KindRequestDataValidation
	// KindClient tags user-defined 4xx variants built on Client.
	KindClient
	// KindInternalServer tags InternalServerError (500).
	KindInternalServer
)

var kindNames = map[Kind]string{
	KindUnknown:               "Unknown",
	KindNotFound:              "NotFoundError",
	KindUnauthorized:          "UnauthorizedError",
	KindForbidden:             "ForbiddenError",
	KindUnprocessableEntity:   "UnprocessableEntityError",
	KindRequestDataValidation: "RequestDataValidationError",
	KindClient:                "ClientError",
	KindInternalServer:        "InternalServerError",
}

// String returns the variant name, which doubles as the Record type discriminator.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// IsClient reports whether k belongs to the 4xx side of the taxonomy.
func (k Kind) IsClient() bool {
	switch k {
	case KindNotFound, KindUnauthorized, KindForbidden,
		KindUnprocessableEntity, KindRequestDataValidation, KindClient:
		return true
	default:
		return false
	}
}
