package validators

const allFieldsRequired = "All fields are required"

// Rules are the validation rules of one resource
type Rules struct {
	// Create and Replace list the fields that must be truthy on POST and PUT
	Create  []string
	Replace []string
	// Message is the 422 error text when a required field is missing
	Message string
	Filter  QueryFilter
}

var (
	UserRules = Rules{
		Create:  []string{"username", "password", "name", "email", "phoneNumber", "profilePicture"},
		Replace: []string{"username", "password", "name", "email", "phoneNumber", "profilePicture"},
		Message: allFieldsRequired,
		Filter:  QueryFilter{Param: "username", Column: "username", Kind: TextContains},
	}

	// HostRules only requires userId on create; the link to the user is fixed afterwards
	HostRules = Rules{
		Create:  []string{"username", "password", "name", "email", "phoneNumber", "profilePicture", "aboutMe", "userId"},
		Replace: []string{"username", "password", "name", "email", "phoneNumber", "profilePicture", "aboutMe"},
		Message: allFieldsRequired,
		Filter:  QueryFilter{Param: "name", Column: "name", Kind: TextContains},
	}

	PropertyRules = Rules{
		Create:  propertyFields,
		Replace: propertyFields,
		Message: allFieldsRequired,
		Filter:  QueryFilter{Param: "location", Column: "location", Kind: TextContains},
	}

	BookingRules = Rules{
		Create:  bookingFields,
		Replace: bookingFields,
		Message: allFieldsRequired,
		Filter:  QueryFilter{Param: "bookingStatus", Column: "booking_status", Kind: TextContains},
	}

	ReviewRules = Rules{
		Create:  []string{"rating", "comment", "userId", "propertyId"},
		Replace: []string{"rating", "comment", "userId", "propertyId"},
		Message: allFieldsRequired,
		Filter:  QueryFilter{Param: "rating", Column: "rating", Kind: IntegerEquals},
	}

	AmenityRules = Rules{
		Create:  []string{"name", "description"},
		Replace: []string{"name", "description"},
		Message: "Name and description are required",
		Filter:  QueryFilter{Param: "name", Column: "name", Kind: TextContains},
	}
)

var propertyFields = []string{
	"title", "description", "location", "pricePerNight",
	"bedroomCount", "bathroomCount", "maxGuestCount", "rating", "hostId",
}

var bookingFields = []string{
	"checkinDate", "checkoutDate", "numberOfGuests", "totalPrice",
	"bookingStatus", "userId", "propertyId",
}
