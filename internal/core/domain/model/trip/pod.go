package trip

import (
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/guard"
)

// ErrProofOfDeliveryIsNotConstructed indicates a ProofOfDelivery created
// outside NewProofOfDelivery.
var ErrProofOfDeliveryIsNotConstructed = errs.NewValueIsRequiredError(
	"ProofOfDelivery must be created via NewProofOfDelivery",
)

// ProofOfDelivery is the evidence attached to a completed delivery stop:
// a photo reference plus an optional signer name and the signing time.
type ProofOfDelivery struct {
	photoRef string
	signedBy *string
	signedAt time.Time

	guard guard.ConstructorGuard
}

// NewProofOfDelivery creates a validated POD record. The photo reference is
// required; the signer is optional.
func NewProofOfDelivery(photoRef string, signedBy *string, signedAt time.Time) (ProofOfDelivery, error) {
	if photoRef == "" {
		return ProofOfDelivery{}, errs.NewValueIsRequiredError("podPhotoRef")
	}
	if signedAt.IsZero() {
		signedAt = time.Now()
	}

	return ProofOfDelivery{
		photoRef: photoRef,
		signedBy: signedBy,
		signedAt: signedAt,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// PhotoRef returns the stored photo reference.
func (p ProofOfDelivery) PhotoRef() string {
	return p.photoRef
}

// SignedBy returns the signer name, or nil when unsigned.
func (p ProofOfDelivery) SignedBy() *string {
	return p.signedBy
}

// SignedAt returns the signing timestamp.
func (p ProofOfDelivery) SignedAt() time.Time {
	return p.signedAt
}

// Validate returns ErrProofOfDeliveryIsNotConstructed for zero values.
func (p ProofOfDelivery) Validate() error {
	return p.guard.Validate(ErrProofOfDeliveryIsNotConstructed)
}
