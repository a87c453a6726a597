package entity

import (
	"time"
)

// Product is a listing owned by a seller. Seller fields are denormalized
// onto the product so buyer queries never need a join.
type Product struct {
	ID                   string    `json:"id" firestore:"-"`
	SellerID             string    `json:"sellerId" firestore:"sellerId"`
	SellerName           string    `json:"sellerName" firestore:"sellerName"`
	SellerPincode        string    `json:"sellerPincode,omitempty" firestore:"sellerPincode"`
	SellerAddress        string    `json:"sellerAddress,omitempty" firestore:"sellerAddress"`
	SellerShopName       string    `json:"sellerShopName,omitempty" firestore:"sellerShopName"`
	SellerDeliveryRadius int       `json:"sellerDeliveryRadius,omitempty" firestore:"sellerDeliveryRadius"`
	Name                 string    `json:"name" firestore:"name"`
	Description          string    `json:"description" firestore:"description"`
	Category             string    `json:"category" firestore:"category"`
	Price                float64   `json:"price" firestore:"price"`
	Unit                 string    `json:"unit" firestore:"unit"`
	Stock                int       `json:"stock" firestore:"stock"`
	Images               []string  `json:"images" firestore:"images"`
	CoveredPincodes      []string  `json:"coveredPincodes" firestore:"coveredPincodes"`
	CreatedAt            time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt" firestore:"updatedAt"`
	IsActive             bool      `json:"isActive" firestore:"isActive"`
}
