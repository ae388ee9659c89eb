package services

import (
	"fmt"

	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/pkg/errs"
)

// Role identifies the kind of caller acting on an order.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// RoleArtist is a selling or commissioned artist.
	RoleArtist

	// RoleBuyer is a purchasing buyer. Buyers read delivery state but never
	// transition it.
	RoleBuyer

	// RolePartner is a third-party delivery partner executing the
	// Accepted -> OutForDelivery -> Delivered leg.
	RolePartner

	// RoleAdmin is operational tooling. Admins may read anything and invoke
	// the audited status override.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their wire names.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		RoleArtist:  "artist",
		RoleBuyer:   "buyer",
		RolePartner: "partner",
		RoleAdmin:   "admin",
	}
}

// ParseRole converts a wire name to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("callerRole",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r == UnknownRole {
		return errs.NewValueIsInvalidErrorWithCause("callerRole",
			fmt.Errorf("%d is not a valid role", r))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("callerRole",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Actor is the authenticated caller as resolved by the identity collaborator:
// a user id plus the role the credential was issued for.
type Actor struct {
	ID   int64
	Role Role
}

// Action enumerates the order operations the policy guards.
type Action int

const (
	// ActionView reads delivery state for a single order.
	ActionView Action = iota + 1
	// ActionRequestDelivery is the artist-initiated NotApplicable -> Pending
	// transition.
	ActionRequestDelivery
	// ActionAcceptDelivery is the partner taking a pending job.
	ActionAcceptDelivery
	// ActionMarkOutForDelivery is the assigned partner starting transport.
	ActionMarkOutForDelivery
	// ActionMarkDelivered is the assigned partner completing transport.
	ActionMarkDelivered
	// ActionOverrideStatus is the audited administrative correction.
	ActionOverrideStatus
)

// String returns the operation name used in error details and audit entries.
func (a Action) String() string {
	switch a {
	case ActionView:
		return "viewDelivery"
	case ActionRequestDelivery:
		return "requestDelivery"
	case ActionAcceptDelivery:
		return "acceptDelivery"
	case ActionMarkOutForDelivery:
		return "markOutForDelivery"
	case ActionMarkDelivered:
		return "markDelivered"
	case ActionOverrideStatus:
		return "overrideDeliveryStatus"
	default:
		return "unknown"
	}
}

// AccessPolicy is the authorization gate. It confirms the caller has a
// legitimate relationship to the order before any transition or read is
// allowed, as a single reusable check instead of per-endpoint re-derivation.
//
// Rules:
//   - artists act on orders they own (the commissioned artist for
//     commissions, any item-owning artist for catalog orders), and may only
//     view and request delivery
//   - buyers get read-only access to their own orders and never transition
//     delivery status
//   - partners may accept any pending job, but later transitions require the
//     caller to be the assigned partner
//   - admins may view anything and invoke the status override
//
// Denial shape: when an artist or buyer lacks the ownership relationship the
// policy reports ObjectNotFoundError, the same class a missing order yields,
// so callers cannot probe for the existence of other users' orders. Role
// violations (a buyer attempting a transition, a partner requesting pickup)
// report ForbiddenError. Partner mismatches on later transitions also report
// ForbiddenError: partners already saw the order in the shared pending list,
// so concealment would protect nothing.
type AccessPolicy struct{}

// NewAccessPolicy creates an AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize returns nil if actor may perform action on the given order.
//
// Returns:
//   - *errs.ForbiddenError when the actor's role may never perform the
//     action, or a partner is not the assigned partner
//   - *errs.ObjectNotFoundError when an artist or buyer has no ownership
//     relationship to the order (existence concealment)
//   - *errs.ValueIsInvalidError when the actor's role is invalid
func (p AccessPolicy) Authorize(actor Actor, action Action, o order.Order) error {
	if err := actor.Role.Validate(); err != nil {
		return err
	}

	switch actor.Role {
	case RoleArtist:
		return p.authorizeArtist(actor, action, o)
	case RoleBuyer:
		return p.authorizeBuyer(actor, action, o)
	case RolePartner:
		return p.authorizePartner(actor, action, o)
	case RoleAdmin:
		return p.authorizeAdmin(action)
	default:
		return errs.NewForbiddenError(action.String())
	}
}

func (p AccessPolicy) authorizeArtist(actor Actor, action Action, o order.Order) error {
	if action != ActionView && action != ActionRequestDelivery {
		return errs.NewForbiddenErrorWithCause(action.String(),
			fmt.Errorf("artists may only view and request delivery"))
	}
	if !o.OwnedByArtist(actor.ID) {
		return errs.NewObjectNotFoundError("order", o.Ref().String())
	}
	return nil
}

func (p AccessPolicy) authorizeBuyer(actor Actor, action Action, o order.Order) error {
	if action != ActionView {
		return errs.NewForbiddenErrorWithCause(action.String(),
			fmt.Errorf("buyers never transition delivery status"))
	}
	if o.BuyerID() != actor.ID {
		return errs.NewObjectNotFoundError("order", o.Ref().String())
	}
	return nil
}

func (p AccessPolicy) authorizePartner(actor Actor, action Action, o order.Order) error {
	switch action {
	case ActionAcceptDelivery:
		// Any partner may take an unassigned job; the optimistic store
		// update settles concurrent winners.
		if assigned := o.Delivery().PartnerID(); assigned != nil && *assigned != actor.ID {
			return errs.NewForbiddenErrorWithCause(action.String(),
				fmt.Errorf("order is already assigned to another partner"))
		}
		return nil
	case ActionMarkOutForDelivery, ActionMarkDelivered, ActionView:
		assigned := o.Delivery().PartnerID()
		if assigned == nil || *assigned != actor.ID {
			return errs.NewForbiddenErrorWithCause(action.String(),
				fmt.Errorf("caller is not the assigned partner"))
		}
		return nil
	default:
		return errs.NewForbiddenErrorWithCause(action.String(),
			fmt.Errorf("partners may not perform this operation"))
	}
}

func (p AccessPolicy) authorizeAdmin(action Action) error {
	if action == ActionView || action == ActionOverrideStatus {
		return nil
	}
	return errs.NewForbiddenErrorWithCause(action.String(),
		fmt.Errorf("admins use the override, not normal transitions"))
}
