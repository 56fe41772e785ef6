package eventlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	walletID := uuid.New()
	in := []event.Event{
		event.TransactionCreated{
			ID:       uuid.New(),
			WalletID: walletID,
			Type:     model.TypeIncome,
			Amount:   decimal.NewFromInt(30),
		},
		event.TransactionUpdated{
			ID:       uuid.New(),
			WalletID: event.Unchanged(walletID),
			Type:     event.Unchanged(model.TypeIncome),
			Amount:   event.Changed(decimal.NewFromInt(30), decimal.NewFromInt(50)),
		},
		event.WalletDeleted{
			ID:                     walletID,
			BudgetID:               uuid.New(),
			Balance:                decimal.NewFromInt(500),
			IsPartOfGeneralBalance: true,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	out, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, out, 3)

	created, ok := out[0].(event.TransactionCreated)
	require.True(t, ok)
	assert.Equal(t, walletID, created.WalletID)
	assert.True(t, created.Amount.Equal(decimal.NewFromInt(30)))

	updated, ok := out[1].(event.TransactionUpdated)
	require.True(t, ok)
	assert.False(t, updated.WalletID.Touched())
	require.True(t, updated.Amount.Touched())
	assert.True(t, updated.Amount.New.Equal(decimal.NewFromInt(50)))

	deleted, ok := out[2].(event.WalletDeleted)
	require.True(t, ok)
	assert.True(t, deleted.IsPartOfGeneralBalance)
}

func TestRead_SkipsBlankLines(t *testing.T) {
	input := `
{"kind":"goal.created","event":{"id":"` + uuid.New().String() + `"}}

{"kind":"goal.updated","event":{"id":"` + uuid.New().String() + `"}}
`
	out, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestRead_UnknownKind(t *testing.T) {
	input := `{"kind":"wallet.rebalanced","event":{}}`
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event kind")
	assert.Contains(t, err.Error(), "line 1")
}

func TestRead_MalformedJSON(t *testing.T) {
	input := `{"kind":"goal.created","event":{"id":"` + uuid.New().String() + `"}}` + "\n{not json}\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
