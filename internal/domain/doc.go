// Package domain defines the core value types of the newsletter service.
//
// Types in this package are validated at construction: a SubscriberEmail or
// SubscriberName can only be obtained through its Parse function, so any value
// held downstream is already known to be well formed.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - Validation lives in Parse functions (pure functions on the input)
package domain
