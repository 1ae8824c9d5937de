package httpserver

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"hotelier/internal/domain"
)

// hotelPayload is the request body for create and update. Every descriptive
// field is required on both (the update merge still happens field-by-field in
// the service). Pointers let "present with zero value" pass validation:
// bedroomCount:0 is valid input.
type hotelPayload struct {
	Title         *string        `json:"title" validate:"required"`
	Description   *string        `json:"description" validate:"required"`
	GuestCount    *int           `json:"guestCount" validate:"required"`
	BedroomCount  *int           `json:"bedroomCount" validate:"required"`
	BathroomCount *int           `json:"bathroomCount" validate:"required"`
	Amenities     *[]string      `json:"amenities" validate:"required"`
	Host          *hostPayload   `json:"host" validate:"required"`
	Address       *string        `json:"address" validate:"required"`
	Latitude      *float64       `json:"latitude" validate:"required"`
	Longitude     *float64       `json:"longitude" validate:"required"`
	Images        *[]string      `json:"images"`
	Rooms         *[]roomPayload `json:"rooms"`
}

type hostPayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

type roomPayload struct {
	RoomTitle    string `json:"roomTitle"`
	RoomImage    string `json:"roomImage"`
	BedroomCount int    `json:"bedroomCount"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names, not Go ones
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// missingFields splits validation failures into top-level missing fields and
// incomplete-host errors, mirroring the response contract.
func missingFields(err error) (fields []string, hostIncomplete bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	for _, fe := range verrs {
		// Namespace is like hotelPayload.host.name for nested failures.
		if parts := strings.Split(fe.Namespace(), "."); len(parts) > 2 {
			hostIncomplete = true
			continue
		}
		fields = append(fields, fe.Field())
	}
	return fields, hostIncomplete
}

func toRooms(rp []roomPayload) []domain.Room {
	out := make([]domain.Room, len(rp))
	for i, r := range rp {
		out[i] = domain.Room{RoomTitle: r.RoomTitle, RoomImage: r.RoomImage, BedroomCount: r.BedroomCount}
	}
	return out
}

// toHotel builds the create input. Slugs and id are assigned by the service.
func (p *hotelPayload) toHotel() domain.Hotel {
	h := domain.Hotel{
		Title:         *p.Title,
		Description:   *p.Description,
		GuestCount:    *p.GuestCount,
		BedroomCount:  *p.BedroomCount,
		BathroomCount: *p.BathroomCount,
		Amenities:     *p.Amenities,
		Host:          domain.Host{Name: p.Host.Name, Email: p.Host.Email},
		Address:       *p.Address,
		Latitude:      *p.Latitude,
		Longitude:     *p.Longitude,
	}
	if p.Images != nil {
		h.Images = *p.Images
	}
	if p.Rooms != nil {
		h.Rooms = toRooms(*p.Rooms)
	}
	return h
}

// toPatch keeps field presence: only what the request carried is replaced.
func (p *hotelPayload) toPatch() domain.HotelPatch {
	patch := domain.HotelPatch{
		Title:         p.Title,
		Description:   p.Description,
		GuestCount:    p.GuestCount,
		BedroomCount:  p.BedroomCount,
		BathroomCount: p.BathroomCount,
		Amenities:     p.Amenities,
		Address:       p.Address,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		Images:        p.Images,
	}
	if p.Host != nil {
		patch.Host = &domain.Host{Name: p.Host.Name, Email: p.Host.Email}
	}
	if p.Rooms != nil {
		rooms := toRooms(*p.Rooms)
		patch.Rooms = &rooms
	}
	return patch
}
