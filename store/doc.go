/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package store defines the boundary between the model adapter and the
underlying key-value store.

The Client interface covers the four primitives the adapter needs: point
reads, overwrite puts, deletes with a status code, and a paging iterator for
Scan and Query. Request carries the legacy condition-style query shape;
filter clauses are {AttributeValueList, ComparisonOperator} pairs keyed by
attribute name.

Implementations:
  - ddb: DynamoDB implementation backed by the AWS SDK paginators
  - mock: in-memory implementation for testing
*/
package store
