package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry("ed", DefaultPersonas)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	r := newTestRegistry()

	p := r.Lookup("Makise Kurisu")
	assert.Equal(t, "makise kurisu", p.Key)

	p = r.Lookup("ERZA SCARLET")
	assert.Equal(t, "erza scarlet", p.Key)
}

func TestLookup_UnknownFallsBackToDefault(t *testing.T) {
	r := newTestRegistry()

	p := r.Lookup("nonexistent character")
	assert.Equal(t, "ed", p.Key, "unknown keys must resolve to the default persona")
	assert.NotEmpty(t, p.Description)
}

func TestRegister(t *testing.T) {
	r := newTestRegistry()

	err := r.Register("Wise Old Wizard", "You are a wise old wizard.")
	require.NoError(t, err)

	p := r.Lookup("wise old wizard")
	assert.Equal(t, "wise old wizard", p.Key)
	assert.Equal(t, "You are a wise old wizard.", p.Description)
	assert.Equal(t, []string{"wise old wizard"}, p.Aliases)
}

func TestRegister_DuplicateKeepsOriginal(t *testing.T) {
	r := newTestRegistry()

	require.NoError(t, r.Register("wizard", "the first description"))

	err := r.Register("WIZARD", "a second description")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// The original registration is untouched
	assert.Equal(t, "the first description", r.Lookup("wizard").Description)
}

func TestRegister_BuiltinCollision(t *testing.T) {
	r := newTestRegistry()

	err := r.Register("Ed", "an impostor")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestHas(t *testing.T) {
	r := newTestRegistry()

	assert.True(t, r.Has("ed"))
	assert.True(t, r.Has("Erza Scarlet"))
	assert.False(t, r.Has("natsu"))
}

func TestNames_SortedAndLive(t *testing.T) {
	r := newTestRegistry()

	assert.Equal(t, []string{"Ed", "Erza scarlet", "Makise kurisu"}, r.Names())

	// Runtime registrations show up in the listing
	require.NoError(t, r.Register("albert einstein", "You are Albert Einstein."))
	assert.Equal(t, []string{"Albert einstein", "Ed", "Erza scarlet", "Makise kurisu"}, r.Names())
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "Makise kurisu", Display("makise kurisu"))
	assert.Equal(t, "", Display(""))
}
