package commands

import (
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/store"
)

// projectEntity folds an event's entity-level effect into the store.
// Replay is the write path here, so the rows that goal recomputes and the
// check command read from must track the events the engine reconciles.
// Runs after the engine so snapshot-based handlers (wallet deletion) still
// see the rows they scan. Transfers leave no rows; goal and category
// edits land in the ledger files before their events are replayed.
func projectEntity(m *store.Memory, e event.Event) error {
	switch ev := e.(type) {
	case event.TransactionCreated:
		m.PutTransaction(&model.Transaction{
			ID:         ev.ID,
			WalletID:   ev.WalletID,
			CategoryID: ev.CategoryID,
			Type:       ev.Type,
			Amount:     ev.Amount,
			Date:       ev.Date,
		})
	case event.TransactionUpdated:
		t, err := m.TransactionByID(ev.ID)
		if err != nil {
			return err
		}
		t.WalletID = ev.WalletID.Effective()
		t.CategoryID = ev.CategoryID.Effective()
		t.Type = ev.Type.Effective()
		t.Amount = ev.Amount.Effective()
		t.Date = ev.Date.Effective()
	case event.TransactionDeleted:
		m.DeleteTransaction(ev.ID)
	case event.WalletCreated:
		m.PutWallet(&model.Wallet{
			ID:                     ev.ID,
			BudgetID:               ev.BudgetID,
			Name:                   ev.Name,
			Currency:               ev.Currency,
			Balance:                ev.Balance,
			IsPartOfGeneralBalance: ev.IsPartOfGeneralBalance,
		})
	case event.WalletUpdated:
		w, err := m.WalletByID(ev.ID)
		if err != nil {
			return err
		}
		w.BudgetID = ev.BudgetID.Effective()
		w.Balance = ev.Balance.Effective()
		w.IsPartOfGeneralBalance = ev.IsPartOfGeneralBalance.Effective()
	case event.WalletBalanceChanged:
		w, err := m.WalletByID(ev.ID)
		if err != nil {
			return err
		}
		w.Balance = ev.Balance.Effective()
	case event.WalletDeleted:
		m.DeleteWallet(ev.ID)
		txs, err := m.Transactions()
		if err != nil {
			return err
		}
		for _, t := range txs {
			if t.WalletID == ev.ID {
				m.DeleteTransaction(t.ID)
			}
		}
	}
	return nil
}
