package access

// Owned is anything with a sender and a receiver, such as a package or one of
// its read models.
type Owned interface {
	OwnerIDs() (senderID, receiverID int64)
}

// Owns reports whether the principal is the sender or the receiver of o.
func Owns(p Principal, o Owned) bool {
	if p.Validate() != nil || o == nil {
		return false
	}
	senderID, receiverID := o.OwnerIDs()
	return p.id == senderID || p.id == receiverID
}

// CanView reports whether the principal may read o and its history.
// Operators and admins see every package; users only see packages they own.
func CanView(p Principal, o Owned) bool {
	return p.IsAtLeast(RoleOperator) || Owns(p, o)
}
