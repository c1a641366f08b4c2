// Package serviceability answers cash-on-delivery eligibility and
// delivery-estimate questions by pincode. Lookups are backed by static
// sets today but exposed behind an asynchronous, context-bound API so a
// real logistics service can replace them without touching callers.
package serviceability

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

// CODResult is the cash-on-delivery verdict for a pincode.
type CODResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// Estimate is the delivery-time verdict for a pincode.
type Estimate struct {
	Message string `json:"message"`
}

// Result joins both verdicts for a single pincode check.
type Result struct {
	COD      CODResult `json:"cod"`
	Estimate Estimate  `json:"estimate"`
}

var pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)

// Serviceable pincodes for COD, with the metro subset that gets the
// fastest delivery bucket. In production these come from a logistics
// partner; the seed mirrors the storefront's launch cities.
var defaultServiceable = []string{
	"400001", "400002", "400003", "400004", "400005", // Mumbai
	"110001", "110002", "110003", "110004", "110005", // Delhi
	"700001", "700002", "700003", // Kolkata
	"600001", "600002", "600003", // Chennai
	"560001", "560002", // Bengaluru
}

var defaultMetro = []string{"400001", "110001", "700001", "600001", "560001"}

// Resolver classifies pincodes against its serviceable and metro sets.
// Both sets are fixed at construction; lookups share no mutable state
// and are safe to run concurrently.
type Resolver struct {
	serviceable map[string]struct{}
	metro       map[string]struct{}
}

// NewResolver builds a resolver over the default pincode sets.
func NewResolver() *Resolver {
	return NewResolverWithSets(defaultServiceable, defaultMetro)
}

// NewResolverWithSets builds a resolver over explicit pincode sets.
func NewResolverWithSets(serviceable, metro []string) *Resolver {
	r := &Resolver{
		serviceable: make(map[string]struct{}, len(serviceable)),
		metro:       make(map[string]struct{}, len(metro)),
	}
	for _, p := range serviceable {
		r.serviceable[p] = struct{}{}
	}
	for _, p := range metro {
		r.metro[p] = struct{}{}
	}
	return r
}

// CheckCOD reports whether cash on delivery is available for the
// pincode. Any code outside the known-good set, malformed ones
// included, gets a negative verdict; the only error is a dead context.
func (r *Resolver) CheckCOD(ctx context.Context, pincode string) (CODResult, error) {
	if err := ctx.Err(); err != nil {
		return CODResult{}, err
	}
	if _, ok := r.serviceable[pincode]; ok {
		return CODResult{Available: true, Message: "Cash on Delivery available."}, nil
	}
	return CODResult{Available: false, Message: "Cash on Delivery not available. Please pay online."}, nil
}

// DeliveryEstimate buckets the pincode by specificity: metro first,
// then the broader serviceable set, then the standard fallback. This
// cascading order is deliberate and distinct from the campaign
// resolver's declaration-order policy. A malformed pincode yields a
// deterministic "invalid" message, never an error.
func (r *Resolver) DeliveryEstimate(ctx context.Context, pincode string) (Estimate, error) {
	if err := ctx.Err(); err != nil {
		return Estimate{}, err
	}
	if !pincodeRe.MatchString(pincode) {
		return Estimate{Message: "Enter a valid pincode for delivery estimates."}, nil
	}
	if _, ok := r.metro[pincode]; ok {
		return Estimate{Message: fmt.Sprintf("Delivers in 2-3 days to %s", pincode)}, nil
	}
	if _, ok := r.serviceable[pincode]; ok {
		return Estimate{Message: fmt.Sprintf("Delivers in 4-5 days to %s", pincode)}, nil
	}
	return Estimate{Message: fmt.Sprintf("Standard delivery in 7-10 days to %s", pincode)}, nil
}

// Check runs both lookups concurrently and joins on both. On timeout or
// cancellation it fails toward the safe verdict: COD unavailable and
// the standard delivery bucket, rather than blocking the page.
func (r *Resolver) Check(ctx context.Context, pincode string, timeout time.Duration) Result {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	codCh := make(chan CODResult, 1)
	estCh := make(chan Estimate, 1)
	go func() {
		if cod, err := r.CheckCOD(ctx, pincode); err == nil {
			codCh <- cod
		}
	}()
	go func() {
		if est, err := r.DeliveryEstimate(ctx, pincode); err == nil {
			estCh <- est
		}
	}()

	res := Result{
		COD:      CODResult{Available: false, Message: "Cash on Delivery status unknown. Please pay online."},
		Estimate: Estimate{Message: fmt.Sprintf("Standard delivery in 7-10 days to %s", pincode)},
	}
	for done := 0; done < 2; {
		select {
		case cod := <-codCh:
			res.COD = cod
			done++
		case est := <-estCh:
			res.Estimate = est
			done++
		case <-ctx.Done():
			return res
		}
	}
	return res
}
