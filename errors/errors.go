package errors

const (
	NotFoundError             = "Requested document does not exist"
	InUseError                = "Document is still referenced and can not be deleted"
	DatabaseError             = "Database exception"
	InvalidIDError            = "Invalid document id"
	EmailAlreadyExist         = "Email already exists in database"
	InvalidCredentials        = "Invalid email or password"
	InvalidTokenError         = "Token is invalid"
	DuplicateFlightNumber     = "Flight number already exists"
	InvalidRequestFormatError = "Invalid request format"
	ConflictingRatingFilters  = "minRating and stars filters are mutually exclusive"
)
