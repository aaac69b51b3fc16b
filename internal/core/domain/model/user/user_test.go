package user_test

import (
	"testing"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ResolveAddress(t *testing.T) {
	home := user.Address{ID: "a1", Title: "Home", Street: "S1", City: "Istanbul"}
	work := user.Address{ID: "a2", Title: "Work", Street: "S2", City: "Ankara", IsDefault: true}
	u := &user.User{ID: kernel.NewUUID(), Addresses: []user.Address{home, work}}

	t.Run("selected address wins", func(t *testing.T) {
		a, ok := u.ResolveAddress("a1")

		require.True(t, ok)
		assert.Equal(t, "Home", a.Title)
	})

	t.Run("unknown id falls back to default", func(t *testing.T) {
		a, ok := u.ResolveAddress("missing")

		require.True(t, ok)
		assert.Equal(t, "Work", a.Title)
	})

	t.Run("no id uses default", func(t *testing.T) {
		a, ok := u.ResolveAddress("")

		require.True(t, ok)
		assert.Equal(t, "a2", a.ID)
	})

	t.Run("no default and no match", func(t *testing.T) {
		noDefault := &user.User{ID: kernel.NewUUID(), Addresses: []user.Address{home}}

		_, ok := noDefault.ResolveAddress("")

		assert.False(t, ok)
	})

	t.Run("nil user", func(t *testing.T) {
		var nilUser *user.User

		_, ok := nilUser.ResolveAddress("a1")

		assert.False(t, ok)
	})
}

func TestAddress_Snapshot(t *testing.T) {
	snap, err := user.Address{Title: "Home", Street: "S1", City: "Izmir", District: "Bornova", Zip: "35000"}.Snapshot()

	require.NoError(t, err)
	assert.Equal(t, "Bornova", snap.District())

	_, err = user.Address{Title: "Broken"}.Snapshot()
	assert.Error(t, err)
}
