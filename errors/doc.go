/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package errors defines the error taxonomy for the dynamodel adapter.

Every error is available both as a sentinel for errors.Is checks and as a
typed error carrying context:

	m.Where("age", ">", 30, "or")
	if errors.IsUnsupportedFeature(m.Err()) {
		// only conjunctive "and" filters are supported
	}

StoreError wraps failures reported by the store client; use Unwrap (or
errors.As) to reach the underlying SDK error.
*/
package errors
