package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/junaidrashid-git/storefront/models"
)

func TestToUserRow_EmptyIdentitiesAreNull(t *testing.T) {
	row := toUserRow(&models.User{ID: "u1", GoogleID: "g-1"})

	assert.Nil(t, row.Username, "empty username must not collide on the unique index")
	assert.Nil(t, row.FacebookID)
	if assert.NotNil(t, row.GoogleID) {
		assert.Equal(t, "g-1", *row.GoogleID)
	}

	back := row.toModel()
	assert.Equal(t, "", back.Username)
	assert.Equal(t, "g-1", back.GoogleID)
}

func TestWrap(t *testing.T) {
	assert.ErrorContains(t, wrap("find user", assert.AnError), "find user")
}
