package db

import "errors"

// ErrNotFound is the common error for when a document is not found in Firestore.
// Repositories wrap it so services can test with errors.Is.
var ErrNotFound = errors.New("document not found")
