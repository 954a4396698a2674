package authz

import "errors"

var ErrForbidden = errors.New("forbidden")

// AssertOwner permits a mutation only when the caller owns the resource.
func AssertOwner(resourceOwnerID, principalID int64) error {
	if resourceOwnerID == 0 || resourceOwnerID != principalID {
		return ErrForbidden
	}
	return nil
}

