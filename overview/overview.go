package overview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Leerling-hub/Booking/domain"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Snapshot holds every row of every table
type Snapshot struct {
	Users      []domain.User     `json:"users"`
	Hosts      []domain.Host     `json:"hosts"`
	Properties []domain.Property `json:"properties"`
	Bookings   []domain.Booking  `json:"bookings"`
	Reviews    []domain.Review   `json:"reviews"`
	Amenities  []domain.Amenity  `json:"amenities"`
}

// Collect loads the six tables
func Collect(ctx context.Context, db *gorm.DB) (*Snapshot, error) {
	s := &Snapshot{}
	tx := db.WithContext(ctx)

	for name, dest := range map[string]interface{}{
		"users":      &s.Users,
		"hosts":      &s.Hosts,
		"properties": &s.Properties,
		"bookings":   &s.Bookings,
		"reviews":    &s.Reviews,
		"amenities":  &s.Amenities,
	} {
		if err := tx.Order("id").Find(dest).Error; err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}
	return s, nil
}

// WriteJSON prints the snapshot as indented JSON
func WriteJSON(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// sheet is one table of the workbook
type sheet struct {
	name    string
	headers []string
	rows    [][]interface{}
}

func (s *Snapshot) sheets() []sheet {
	users := sheet{name: "Users", headers: []string{"id", "username", "name", "email", "phoneNumber", "profilePicture"}}
	for _, u := range s.Users {
		users.rows = append(users.rows, []interface{}{u.ID, u.Username, u.Name, u.Email, u.PhoneNumber, u.ProfilePicture})
	}

	hosts := sheet{name: "Hosts", headers: []string{"id", "username", "name", "email", "phoneNumber", "profilePicture", "aboutMe", "userId"}}
	for _, h := range s.Hosts {
		hosts.rows = append(hosts.rows, []interface{}{h.ID, h.Username, h.Name, h.Email, h.PhoneNumber, h.ProfilePicture, h.AboutMe, h.UserID})
	}

	properties := sheet{name: "Properties", headers: []string{"id", "title", "description", "location", "pricePerNight", "bedroomCount", "bathroomCount", "maxGuestCount", "rating", "hostId"}}
	for _, p := range s.Properties {
		properties.rows = append(properties.rows, []interface{}{p.ID, p.Title, p.Description, p.Location, p.PricePerNight, p.BedroomCount, p.BathroomCount, p.MaxGuestCount, p.Rating, p.HostID})
	}

	bookings := sheet{name: "Bookings", headers: []string{"id", "checkinDate", "checkoutDate", "numberOfGuests", "totalPrice", "bookingStatus", "userId", "propertyId"}}
	for _, b := range s.Bookings {
		bookings.rows = append(bookings.rows, []interface{}{b.ID, b.CheckinDate.Format(time.RFC3339), b.CheckoutDate.Format(time.RFC3339), b.NumberOfGuests, b.TotalPrice, b.BookingStatus, b.UserID, b.PropertyID})
	}

	reviews := sheet{name: "Reviews", headers: []string{"id", "rating", "comment", "userId", "propertyId"}}
	for _, r := range s.Reviews {
		reviews.rows = append(reviews.rows, []interface{}{r.ID, r.Rating, r.Comment, r.UserID, r.PropertyID})
	}

	amenities := sheet{name: "Amenities", headers: []string{"id", "name", "description"}}
	for _, a := range s.Amenities {
		amenities.rows = append(amenities.rows, []interface{}{a.ID, a.Name, a.Description})
	}

	return []sheet{users, hosts, properties, bookings, reviews, amenities}
}

// ExportXLSX writes one sheet per table, each with a header row, to path.
// Passwords are not exported.
func ExportXLSX(s *Snapshot, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range s.sheets() {
		if i == 0 {
			// reuse the default sheet of a new workbook
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return err
		}

		for col, header := range sh.headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(sh.name, cell, header); err != nil {
				return err
			}
		}

		for r, row := range sh.rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			values := row
			if err := f.SetSheetRow(sh.name, cell, &values); err != nil {
				return fmt.Errorf("write %s row %d: %w", sh.name, r+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
