package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SilasBach/insurease/pkg/sdk"
)

func TestCheckCatalogEntry(t *testing.T) {
	identity := &sdk.Identity{
		UserID: "123",
		Role:   sdk.RoleUser,
		Policies: sdk.PolicyCatalog{
			"TRYG": {"car.pdf", "home.pdf"},
			"Alka": {},
		},
	}

	t.Run("present", func(t *testing.T) {
		assert.NoError(t, checkCatalogEntry(identity, "TRYG", "car.pdf"))
	})

	t.Run("unknown company", func(t *testing.T) {
		err := checkCatalogEntry(identity, "Nordea", "car.pdf")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Nordea")
	})

	t.Run("unknown policy", func(t *testing.T) {
		err := checkCatalogEntry(identity, "TRYG", "boat.pdf")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "boat.pdf")
	})

	t.Run("company without policies", func(t *testing.T) {
		assert.Error(t, checkCatalogEntry(identity, "Alka", "car.pdf"))
	})
}
