package domain

import (
	"strconv"
	"strings"
	"time"
)

const (
	receiptPrefix    = "listing"
	receiptSeparator = "_"
)

// Receipt is the decoded merchant reference attached to a provider order.
type Receipt struct {
	ListingID     string
	PurchaseType  string
	IssuedAtToken string
}

// DecodeReceipt extracts listing data from listing_<listingId>_<purchaseType>_<timestamp>.
// The prefix token is not checked. It returns false when no listing id is present.
func DecodeReceipt(receipt string) (Receipt, bool) {
	tokens := strings.Split(receipt, receiptSeparator)
	if len(tokens) < 2 || tokens[1] == "" {
		return Receipt{}, false
	}
	out := Receipt{ListingID: tokens[1]}
	if len(tokens) > 2 {
		out.PurchaseType = tokens[2]
	}
	if len(tokens) > 3 {
		out.IssuedAtToken = tokens[3]
	}
	return out, true
}

// EncodeReceipt builds a receipt string that DecodeReceipt accepts. Listing ids
// must not contain underscores.
func EncodeReceipt(listingID, purchaseType string, issuedAt time.Time) string {
	return strings.Join([]string{
		receiptPrefix,
		listingID,
		purchaseType,
		strconv.FormatInt(issuedAt.Unix(), 10),
	}, receiptSeparator)
}
