package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand represents a request to register a new package.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand(principal, "T1", senderID, receiverID, typeID,
//	    10, 20, 1.5, decimal.NewFromInt(300))
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
//
//	handler := NewCreatePackageCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create package: %w", err)
//	}
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	principal      access.Principal
	trackingNumber kernel.TrackingNumber
	senderID       int64
	receiverID     int64
	typeID         int64
	dimensions     kernel.Dimensions
	cost           decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreatePackageCommand(
	principal access.Principal,
	trackingNumber string,
	senderID, receiverID, typeID int64,
	width, length, weight float64,
	cost decimal.Decimal,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		setID("sender_id", &cmd.senderID, senderID),
		setID("receiver_id", &cmd.receiverID, receiverID),
		setID("type_id", &cmd.typeID, typeID),
		cmd.setDimensions(width, length, weight),
		cmd.setCost(cost),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) Principal() access.Principal {
	return c.principal
}

func (c CreatePackageCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

func (c CreatePackageCommand) SenderID() int64 {
	return c.senderID
}

func (c CreatePackageCommand) ReceiverID() int64 {
	return c.receiverID
}

func (c CreatePackageCommand) TypeID() int64 {
	return c.typeID
}

func (c CreatePackageCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

func (c CreatePackageCommand) Cost() decimal.Decimal {
	return c.cost
}

func (c *CreatePackageCommand) setTrackingNumber(value string) error {
	tn, err := kernel.NewTrackingNumber(value)
	if err != nil {
		return err
	}
	c.trackingNumber = tn
	return nil
}

func (c *CreatePackageCommand) setDimensions(width, length, weight float64) error {
	d, err := kernel.NewDimensions(width, length, weight)
	if err != nil {
		return err
	}
	c.dimensions = d
	return nil
}

func (c *CreatePackageCommand) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%s is less than 0", cost))
	}
	c.cost = cost
	return nil
}

func setID(name string, field *int64, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", id))
	}
	*field = id
	return nil
}
