package db

import (
	"reflect"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petrolife-backend-go/internal/models"
)

// The Firestore encoder stores an untagged struct field under its exact Go
// name, and document field paths are case-sensitive. Every persisted field
// therefore needs an explicit lowerCamel firestore tag, or the repositories'
// Where/OrderBy paths silently match nothing. These tests pin the mapping.

// storedFieldNames returns the document field names a model encodes to,
// failing the test on any exported field that lacks a firestore tag.
func storedFieldNames(t *testing.T, model interface{}) map[string]bool {
	t.Helper()
	names := map[string]bool{}
	typ := reflect.TypeOf(model)
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag, ok := field.Tag.Lookup("firestore")
		require.True(t, ok, "%s.%s has no firestore tag and would be stored as %q", typ.Name(), field.Name, field.Name)
		name := strings.Split(tag, ",")[0]
		if name == "-" {
			continue
		}
		require.NotEmpty(t, name, "%s.%s has an empty firestore field name", typ.Name(), field.Name)
		assert.True(t, unicode.IsLower(rune(name[0])), "%s.%s stored as %q, want lowerCamel", typ.Name(), field.Name, name)
		names[name] = true
	}
	return names
}

func TestPersistedModelsCarryFirestoreTags(t *testing.T) {
	// queried lists the field paths the repositories filter or order by;
	// they must survive encoding under exactly these names.
	tests := []struct {
		name    string
		model   interface{}
		queried []string
	}{
		{"Admin", models.Admin{}, []string{"email"}},
		{"Company", models.Company{}, []string{"email", "createdAt"}},
		{"Distributor", models.Distributor{}, []string{"email", "createdAt"}},
		{"SelectedSubscription", models.SelectedSubscription{}, nil},
		{"SubscriptionPlan", models.SubscriptionPlan{}, []string{"price"}},
		{"Coupon", models.Coupon{}, []string{"code", "createdAt"}},
		{"Car", models.Car{}, []string{"companyId", "createdAt"}},
		{"Station", models.Station{}, []string{"distributorId", "createdAt"}},
		{"WalletRequest", models.WalletRequest{}, []string{"companyId", "status", "createdAt"}},
		{"BankAccount", models.BankAccount{}, []string{"isActive"}},
		{"Transaction", models.Transaction{}, []string{"createdAt"}},
		{"Notification", models.Notification{}, []string{"recipientId", "createdAt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := storedFieldNames(t, tt.model)
			for _, field := range tt.queried {
				assert.True(t, stored[field], "repositories query %q but %s does not store a field under that name", field, tt.name)
			}
		})
	}
}

func TestDocumentIDIsNotPersisted(t *testing.T) {
	// IDs live in the document ref, never duplicated into the body.
	for _, model := range []interface{}{
		models.Admin{}, models.Company{}, models.Distributor{},
		models.SubscriptionPlan{}, models.Coupon{}, models.Car{},
		models.Station{}, models.WalletRequest{}, models.BankAccount{},
		models.Transaction{}, models.Notification{},
	} {
		typ := reflect.TypeOf(model)
		field, ok := typ.FieldByName("ID")
		require.True(t, ok, "%s has no ID field", typ.Name())
		assert.Equal(t, "-", strings.Split(field.Tag.Get("firestore"), ",")[0], "%s.ID must be excluded from the document body", typ.Name())
	}
}
