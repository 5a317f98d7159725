package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Leerling-hub/Booking/cache"
	"github.com/Leerling-hub/Booking/domain"
	"github.com/Leerling-hub/Booking/dto"
	"github.com/Leerling-hub/Booking/events"
	"github.com/Leerling-hub/Booking/repositories"
	"github.com/Leerling-hub/Booking/validators"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes the credentials of users and hosts
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

func idOf(b *domain.Base) string { return b.ID }

// hashPassword rejects passwords bcrypt cannot hash; any other failure is internal
func hashPassword(hasher PasswordHasher, password string) (string, error) {
	hashed, err := hasher.HashPassword(password)
	switch {
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return "", unprocessable(msgPasswordTooLong)
	case err != nil:
		return "", fmt.Errorf("%w: %v", errHashing, err)
	}
	return hashed, nil
}

// NewUserService creates the user service. Replacing or deleting a user
// evicts it from the account cache used by the auth gate.
func NewUserService(repo repositories.Repository[domain.User], hasher PasswordHasher, accounts cache.AccountCache, publisher events.Publisher) ResourceService[domain.User] {
	return &resourceService[domain.User]{
		name:   "User",
		kind:   "user",
		rules:  validators.UserRules,
		repo:   repo,
		idOf:   func(u *domain.User) string { return idOf(&u.Base) },
		events: publisher,
		build: func(body []byte, existing *domain.User) (*domain.User, error) {
			var req dto.UserRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, err
			}

			// passwords are never stored in plain text
			hashed, err := hashPassword(hasher, req.Password)
			if err != nil {
				return nil, err
			}

			user := &domain.User{
				Username:       req.Username,
				Password:       hashed,
				Name:           req.Name,
				Email:          req.Email,
				PhoneNumber:    req.PhoneNumber,
				ProfilePicture: req.ProfilePicture,
			}
			if existing != nil {
				user.ID = existing.ID
			}
			return user, nil
		},
		changed: func(previous *domain.User) {
			if accounts != nil {
				accounts.Delete(previous.Username)
			}
		},
	}
}

// NewHostService creates the host service. The user a host is linked to is
// chosen on create and kept on replace.
func NewHostService(repo repositories.Repository[domain.Host], hasher PasswordHasher, publisher events.Publisher) ResourceService[domain.Host] {
	return &resourceService[domain.Host]{
		name:   "Host",
		kind:   "host",
		rules:  validators.HostRules,
		repo:   repo,
		idOf:   func(h *domain.Host) string { return idOf(&h.Base) },
		events: publisher,
		build: func(body []byte, existing *domain.Host) (*domain.Host, error) {
			var req dto.HostRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, err
			}

			hashed, err := hashPassword(hasher, req.Password)
			if err != nil {
				return nil, err
			}

			host := &domain.Host{
				Username:       req.Username,
				Password:       hashed,
				Name:           req.Name,
				Email:          req.Email,
				PhoneNumber:    req.PhoneNumber,
				ProfilePicture: req.ProfilePicture,
				AboutMe:        req.AboutMe,
				UserID:         req.UserID,
			}
			if existing != nil {
				host.ID = existing.ID
				host.UserID = existing.UserID
			}
			return host, nil
		},
	}
}

func NewPropertyService(repo repositories.Repository[domain.Property], publisher events.Publisher) ResourceService[domain.Property] {
	return &resourceService[domain.Property]{
		name:   "Property",
		kind:   "property",
		rules:  validators.PropertyRules,
		repo:   repo,
		idOf:   func(p *domain.Property) string { return idOf(&p.Base) },
		events: publisher,
		build: func(body []byte, existing *domain.Property) (*domain.Property, error) {
			var req dto.PropertyRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, err
			}

			property := &domain.Property{
				Title:         req.Title,
				Description:   req.Description,
				Location:      req.Location,
				PricePerNight: req.PricePerNight,
				BedroomCount:  req.BedroomCount,
				BathroomCount: req.BathroomCount,
				MaxGuestCount: req.MaxGuestCount,
				Rating:        req.Rating,
				HostID:        req.HostID,
			}
			if existing != nil {
				property.ID = existing.ID
			}
			return property, nil
		},
	}
}

func NewBookingService(repo repositories.Repository[domain.Booking], publisher events.Publisher) ResourceService[domain.Booking] {
	return &resourceService[domain.Booking]{
		name:   "Booking",
		kind:   "booking",
		rules:  validators.BookingRules,
		repo:   repo,
		idOf:   func(b *domain.Booking) string { return idOf(&b.Base) },
		events: publisher,
		build: func(body []byte, existing *domain.Booking) (*domain.Booking, error) {
			var req dto.BookingRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, err
			}

			booking := &domain.Booking{
				CheckinDate:    req.CheckinDate,
				CheckoutDate:   req.CheckoutDate,
				NumberOfGuests: req.NumberOfGuests,
				TotalPrice:     req.TotalPrice,
				BookingStatus:  req.BookingStatus,
				UserID:         req.UserID,
				PropertyID:     req.PropertyID,
			}
			if existing != nil {
				booking.ID = existing.ID
			}
			return booking, nil
		},
	}
}

func NewReviewService(repo repositories.Repository[domain.Review], publisher events.Publisher) ResourceService[domain.Review] {
	return &resourceService[domain.Review]{
		name:   "Review",
		kind:   "review",
		rules:  validators.ReviewRules,
		repo:   repo,
		idOf:   func(r *domain.Review) string { return idOf(&r.Base) },
		events: publisher,
		build: func(body []byte, existing *domain.Review) (*domain.Review, error) {
			var req dto.ReviewRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, err
			}

			review := &domain.Review{
				Rating:     req.Rating,
				Comment:    req.Comment,
				UserID:     req.UserID,
				PropertyID: req.PropertyID,
			}
			if existing != nil {
				review.ID = existing.ID
			}
			return review, nil
		},
	}
}

func NewAmenityService(repo repositories.Repository[domain.Amenity], publisher events.Publisher) ResourceService[domain.Amenity] {
	return &resourceService[domain.Amenity]{
		name:   "Amenity",
		kind:   "amenity",
		rules:  validators.AmenityRules,
		repo:   repo,
		idOf:   func(a *domain.Amenity) string { return idOf(&a.Base) },
		events: publisher,
		build: func(body []byte, existing *domain.Amenity) (*domain.Amenity, error) {
			var req dto.AmenityRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, err
			}

			amenity := &domain.Amenity{Name: req.Name, Description: req.Description}
			if existing != nil {
				amenity.ID = existing.ID
			}
			return amenity, nil
		},
	}
}
