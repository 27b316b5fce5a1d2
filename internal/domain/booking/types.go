package booking

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// The status set is deliberately flat: any status may move to any other.
// Admin tooling relies on being able to flip Cancelled back to Confirmed.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type PaymentMethod string

const (
	PaymentMpesa PaymentMethod = "mpesa"
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMpesa, PaymentCash, PaymentCard:
		return true
	default:
		return false
	}
}

// NewPaymentMethod falls back to mpesa when the input is empty.
func NewPaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentMpesa, nil
	}
	method := PaymentMethod(s)
	if !method.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return method, nil
}
