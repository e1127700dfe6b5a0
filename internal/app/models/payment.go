package models

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

type Payment struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	UserID    string        `json:"userId" bson:"userId"`
	Amount    float64       `json:"amount" bson:"amount"`
	Currency  string        `json:"currency" bson:"currency"`
	Method    string        `json:"method,omitempty" bson:"method,omitempty"`
	Reference string        `json:"reference,omitempty" bson:"reference,omitempty"`
	Status    PaymentStatus `json:"status" bson:"status"`
	TimeModel `bson:",inline"`
}
