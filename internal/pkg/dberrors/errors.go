package dberrors

import (
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// DuplicateKeyField checks if the error is a MongoDB duplicate key error (E11000)
// and extracts the name of the colliding unique index. Indexes are created with
// the field name as the index name, so the extracted value is the field itself.
func DuplicateKeyField(err error) (string, bool) {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return "", false
	}

	// Server message format:
	//   E11000 duplicate key error collection: <db>.<coll> index: <name> dup key: { ... }
	msg := err.Error()
	const marker = "index: "
	i := strings.Index(msg, marker)
	if i < 0 {
		return "", true
	}

	field := msg[i+len(marker):]
	if j := strings.IndexAny(field, " \t"); j >= 0 {
		field = field[:j]
	}
	// Default-named indexes carry a direction suffix (email_1)
	field = strings.TrimSuffix(field, "_1")
	field = strings.TrimSuffix(field, "_-1")

	return field, true
}
