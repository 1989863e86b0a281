// Package resilience retries operations whose failures are transient.
//
// Retry decisions follow the error taxonomy: client errors (4xx) describe
// the request itself and are returned at once, while server errors and
// unclassified errors are retried with exponential backoff.
//
//	order, err := resilience.Retry(ctx, resilience.DefaultRetryConfig(), func() (*Order, error) {
//	    return repo.Get(ctx, id)
//	})
package resilience
