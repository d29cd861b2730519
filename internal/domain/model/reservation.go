package model

// Reservation mirrors the reservation table; JSON keys follow the column
// names so admin listings serialize the rows as stored.
type Reservation struct {
	ID          int64  `json:"id"`
	GuestName   string `json:"nom_client"`
	GuestEmail  string `json:"email"`
	ArrivalDate string `json:"date_arrivee"`
	DepartDate  string `json:"date_depart"`
	Room        string `json:"chambre"`
}
