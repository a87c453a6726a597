// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Role identifies the kind of account behind a marketplace login.
type Role string

const (
	// RoleSeller is the sole authenticated role served by this backend.
	RoleSeller Role = "seller"
	// RoleFarmer exists in the shared user collection but has no routes here.
	RoleFarmer Role = "farmer"
)

// User represents a seller account as stored in the document store.
// The ID is the identity provider's stable subject identifier.
type User struct {
	ID              string    `json:"id" firestore:"-"`
	Email           string    `json:"email" firestore:"email"`
	Role            Role      `json:"role" firestore:"role"`
	Name            string    `json:"name" firestore:"name"`
	Phone           string    `json:"phone" firestore:"phone"`
	Address         string    `json:"address,omitempty" firestore:"address"`
	Pincode         string    `json:"pincode,omitempty" firestore:"pincode"`
	ShopName        string    `json:"shopName,omitempty" firestore:"shopName"`
	DeliveryRadius  int       `json:"deliveryRadius,omitempty" firestore:"deliveryRadius"`
	CoveredPincodes []string  `json:"coveredPincodes,omitempty" firestore:"coveredPincodes"`
	UPIID           string    `json:"upiId,omitempty" firestore:"upiId"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
	IsActive        bool      `json:"isActive" firestore:"isActive"`
}

// IsSeller reports whether the account may use the seller dashboard.
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}
