package booking

type Status string

// Bookings cannot be canceled or amended, so every stored booking is
// confirmed.
const (
	StatusConfirmed Status = "Confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusConfirmed
}
