package constants

const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read validated request data"
	ERROR_CREATE               = "Failed to create record"
	ERROR_EDIT                 = "Failed to update record"
	ERROR_DELETE               = "Failed to delete record"

	INVALID_ID = "Invalid id format"

	CUSTOMER_NOT_FOUND   = "Customer not found"
	CUSTOMER_HAS_RENTALS = "Customer cannot be deleted while rentals reference it"

	COURT_NOT_FOUND   = "Court not found"
	COURT_HAS_RENTALS = "Court cannot be deleted while rentals reference it"

	RENTAL_NOT_FOUND      = "Rental not found"
	RENTAL_ALREADY_BOOKED = "Customer already has an active rental"
	RENTAL_BAD_REFERENCE  = "Rental references a customer or court that does not exist"
	RENTAL_HAS_DEPENDENTS = "Rental cannot be deleted while other records reference it"
)
