package parcel

import (
	"parceltrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrEmptyUpdate is returned when an update carries none of the updatable fields.
var ErrEmptyUpdate = errs.NewValueIsRequiredError("at least one of sender_id, receiver_id, type_id, size_width, size_length, size_weight, cost")

// Updatable lists the wire names of the fields an update may change. Anything else is
// not part of the update.
var Updatable = []string{
	"sender_id", "receiver_id", "type_id",
	"size_width", "size_length", "size_weight",
	"cost",
}

// Update is the set of changes requested for a package. A nil field is left as is.
type Update struct {
	SenderID   *int64
	ReceiverID *int64
	TypeID     *int64
	Width      *float64
	Length     *float64
	Weight     *float64
	Cost       *decimal.Decimal
}

func (u Update) IsEmpty() bool {
	return u.SenderID == nil && u.ReceiverID == nil && u.TypeID == nil &&
		u.Width == nil && u.Length == nil && u.Weight == nil && u.Cost == nil
}

// Fields returns the wire names of the fields present in u, in Updatable order.
func (u Update) Fields() []string {
	present := map[string]bool{
		"sender_id":   u.SenderID != nil,
		"receiver_id": u.ReceiverID != nil,
		"type_id":     u.TypeID != nil,
		"size_width":  u.Width != nil,
		"size_length": u.Length != nil,
		"size_weight": u.Weight != nil,
		"cost":        u.Cost != nil,
	}
	fields := make([]string, 0, len(Updatable))
	for _, name := range Updatable {
		if present[name] {
			fields = append(fields, name)
		}
	}
	return fields
}
