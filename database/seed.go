package database

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/Leerling-hub/Booking/domain"
	"gorm.io/gorm"
)

// SeedPassword is the password of every seeded user and host
const SeedPassword = "password123"

const (
	seedUsers      = 50
	seedHosts      = 10
	seedProperties = 20
	seedAmenities  = 10
	seedBookings   = 50
	seedReviews    = 50
)

// Hasher hashes the seeded credentials
type Hasher interface {
	HashPassword(password string) (string, error)
}

// Seed inserts the sample data set with readable ids (user-id-0, host-id-0, ...).
// rnd drives prices, counts, ratings and dates.
func Seed(ctx context.Context, db *gorm.DB, hasher Hasher, rnd *rand.Rand) error {
	log.Println("Seeding database...")

	// every account shares the same password, so one hash is enough
	hash, err := hasher.HashPassword(SeedPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := make([]domain.User, seedUsers)
		for i := range users {
			users[i] = domain.User{
				Base:           domain.Base{ID: fmt.Sprintf("user-id-%d", i)},
				Username:       fmt.Sprintf("user%d", i),
				Password:       hash,
				Name:           fmt.Sprintf("User %d", i),
				Email:          fmt.Sprintf("user%d@example.com", i),
				PhoneNumber:    fmt.Sprintf("123-456-789%d", i),
				ProfilePicture: fmt.Sprintf("https://example.com/user%d.jpg", i),
			}
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		log.Println("Users seeded.")

		hosts := make([]domain.Host, seedHosts)
		for i := range hosts {
			hosts[i] = domain.Host{
				Base:           domain.Base{ID: fmt.Sprintf("host-id-%d", i)},
				Username:       fmt.Sprintf("host%d", i),
				Password:       hash,
				Name:           fmt.Sprintf("Host %d", i),
				Email:          fmt.Sprintf("host%d@example.com", i),
				PhoneNumber:    fmt.Sprintf("123-456-789%d", i),
				ProfilePicture: fmt.Sprintf("https://example.com/host%d.jpg", i),
				AboutMe:        fmt.Sprintf("About Host %d", i),
				UserID:         fmt.Sprintf("user-id-%d", i),
			}
		}
		if err := tx.Create(&hosts).Error; err != nil {
			return fmt.Errorf("seed hosts: %w", err)
		}
		log.Println("Hosts seeded.")

		properties := make([]domain.Property, seedProperties)
		for i := range properties {
			properties[i] = domain.Property{
				Base:          domain.Base{ID: fmt.Sprintf("property-id-%d", i)},
				Title:         fmt.Sprintf("Property %d", i),
				Description:   fmt.Sprintf("Description for Property %d", i),
				Location:      fmt.Sprintf("Location %d", i),
				PricePerNight: price(rnd, 50, 100),
				BedroomCount:  rnd.Intn(5) + 1,
				BathroomCount: rnd.Intn(3) + 1,
				MaxGuestCount: rnd.Intn(10) + 1,
				Rating:        math.Round((rnd.Float64()*4+1)*10) / 10,
				HostID:        fmt.Sprintf("host-id-%d", i%seedHosts),
			}
		}
		if err := tx.Create(&properties).Error; err != nil {
			return fmt.Errorf("seed properties: %w", err)
		}
		log.Println("Properties seeded.")

		amenities := make([]domain.Amenity, seedAmenities)
		for i := range amenities {
			amenities[i] = domain.Amenity{
				Base:        domain.Base{ID: fmt.Sprintf("amenity-id-%d", i)},
				Name:        fmt.Sprintf("Amenity %d", i),
				Description: fmt.Sprintf("Description for Amenity %d", i),
			}
		}
		if err := tx.Create(&amenities).Error; err != nil {
			return fmt.Errorf("seed amenities: %w", err)
		}
		log.Println("Amenities seeded.")

		today := time.Now().UTC().Truncate(24 * time.Hour)
		bookings := make([]domain.Booking, seedBookings)
		for i := range bookings {
			// check in between 12:00 and 18:59 within the next 30 days,
			// check out 1 to 7 days later between 08:00 and 12:59
			checkin := today.AddDate(0, 0, rnd.Intn(30)).
				Add(time.Duration(12+rnd.Intn(7))*time.Hour + time.Duration(rnd.Intn(60))*time.Minute)
			checkout := checkin.Truncate(24*time.Hour).AddDate(0, 0, rnd.Intn(7)+1).
				Add(time.Duration(8+rnd.Intn(5))*time.Hour + time.Duration(rnd.Intn(60))*time.Minute)

			bookings[i] = domain.Booking{
				Base:           domain.Base{ID: fmt.Sprintf("booking-id-%d", i)},
				CheckinDate:    checkin,
				CheckoutDate:   checkout,
				NumberOfGuests: rnd.Intn(5) + 1,
				TotalPrice:     price(rnd, 100, 1000),
				BookingStatus:  "confirmed",
				UserID:         fmt.Sprintf("user-id-%d", i%seedUsers),
				PropertyID:     fmt.Sprintf("property-id-%d", i%seedProperties),
			}
		}
		if err := tx.Create(&bookings).Error; err != nil {
			return fmt.Errorf("seed bookings: %w", err)
		}
		log.Println("Bookings seeded.")

		reviews := make([]domain.Review, seedReviews)
		for i := range reviews {
			reviews[i] = domain.Review{
				Base:       domain.Base{ID: fmt.Sprintf("review-id-%d", i)},
				Rating:     rnd.Intn(5) + 1,
				Comment:    fmt.Sprintf("Review comment %d", i),
				UserID:     fmt.Sprintf("user-id-%d", i%seedUsers),
				PropertyID: fmt.Sprintf("property-id-%d", i%seedProperties),
			}
		}
		if err := tx.Create(&reviews).Error; err != nil {
			return fmt.Errorf("seed reviews: %w", err)
		}
		log.Println("Reviews seeded.")

		log.Println("Database seeded successfully.")
		return nil
	})
}

// price returns a value in [floor, floor+spread) rounded to cents
func price(rnd *rand.Rand, floor, spread float64) float64 {
	return math.Round((rnd.Float64()*spread+floor)*100) / 100
}
