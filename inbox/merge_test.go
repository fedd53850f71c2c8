package inbox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stytchup/models"
)

func msg(id, text string) models.Message {
	return models.Message{ID: id, Text: text}
}

func TestMergeMessagesKeepsArrivalOrder(t *testing.T) {
	history := []models.Message{msg("a", "one"), msg("b", "two")}
	live := []models.Message{msg("c", "three")}

	out := MergeMessages(history, live)

	assert.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestMergeMessagesDropsDuplicates(t *testing.T) {
	history := []models.Message{msg("a", "one"), msg("b", "two")}
	// The push channel replays "b" after reconnect.
	live := []models.Message{msg("b", "two"), msg("c", "three")}

	out := MergeMessages(history, live)

	assert.Len(t, out, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func TestMergeMessagesEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeMessages(nil, nil))

	only := []models.Message{msg("a", "one")}
	assert.Equal(t, only, MergeMessages(only, nil))
	assert.Equal(t, only, MergeMessages(nil, only))
}

func TestParseOffer(t *testing.T) {
	title, price, err := parseOffer("  Custom hoodie  ", "499.50")
	assert.NoError(t, err)
	assert.Equal(t, "Custom hoodie", title)
	assert.Equal(t, int64(49950), price)

	_, _, err = parseOffer("   ", "499.50")
	assert.Error(t, err)

	_, _, err = parseOffer("Custom hoodie", "abc")
	assert.Error(t, err)

	_, _, err = parseOffer("Custom hoodie", "0")
	assert.Error(t, err)
}
