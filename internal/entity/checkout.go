package entity

// CheckoutSession is the subset of the Stripe Checkout Session the
// frontend needs to redirect the visitor to the hosted payment page.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
