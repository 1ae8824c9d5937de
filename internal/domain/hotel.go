package domain

// Hotel is the persisted aggregate: one JSON document per hotel, rooms
// embedded with no lifecycle of their own.
type Hotel struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	GuestCount    int      `json:"guestCount"`
	BedroomCount  int      `json:"bedroomCount"`
	BathroomCount int      `json:"bathroomCount"`
	Amenities     []string `json:"amenities"`
	Host          Host     `json:"host"`
	Address       string   `json:"address"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Images        []string `json:"images"`
	Rooms         []Room   `json:"rooms"`
}

type Host struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Room struct {
	HotelSlug    string `json:"hotelSlug"`
	RoomSlug     string `json:"roomSlug"`
	RoomTitle    string `json:"roomTitle"`
	RoomImage    string `json:"roomImage"`
	BedroomCount int    `json:"bedroomCount"`
}

// HotelPatch carries an update request. Pointer fields distinguish
// "absent, keep current value" from "present, replace"; a zero like
// bedroomCount:0 is a valid replacement. Rooms, when present, replace the
// whole sequence.
type HotelPatch struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	GuestCount    *int      `json:"guestCount"`
	BedroomCount  *int      `json:"bedroomCount"`
	BathroomCount *int      `json:"bathroomCount"`
	Amenities     *[]string `json:"amenities"`
	Host          *Host     `json:"host"`
	Address       *string   `json:"address"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Images        *[]string `json:"images"`
	Rooms         *[]Room   `json:"rooms"`
}
