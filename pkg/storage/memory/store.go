package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ledgerkit/transfer-service/pkg/models"
	"github.com/ledgerkit/transfer-service/pkg/storage"
)

// Store is an in-memory implementation of storage.Store, used in tests and
// for running the service without a database. A single mutex serializes
// units of work, which trivially satisfies the exclusive-lock contract, and
// a snapshot taken at the start of each unit provides rollback.
type Store struct {
	mu           sync.Mutex
	accounts     map[string]models.Account
	transactions map[string]models.Transaction
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		accounts:     make(map[string]models.Account),
		transactions: make(map[string]models.Transaction),
	}
}

// Make sure we conform to the interface.
var _ storage.Store = (*Store)(nil)

// SeedAccount inserts or replaces an account. Account management is outside
// the engine; this is the hook tests and the dev server use to provision
// accounts.
func (s *Store) SeedAccount(account models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
}

// SeedTransaction inserts or replaces a transaction record directly,
// bypassing the engine.
func (s *Store) SeedTransaction(tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[tx.ID] = tx
}

// Account returns a copy of the account, for assertions in tests.
func (s *Store) Account(id string) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[id]
	return account, ok
}

func (s *Store) CountAccounts(ctx context.Context, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, id := range ids {
		if _, ok := s.accounts[id]; ok {
			count++
		}
	}
	return count, nil
}

func (s *Store) GetAccountSummaries(ctx context.Context, ids []string) (map[string]models.AccountSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make(map[string]models.AccountSummary, len(ids))
	for _, id := range ids {
		if account, ok := s.accounts[id]; ok {
			summaries[id] = models.AccountSummary{ID: account.ID, Email: account.Email, Name: account.Name}
		}
	}
	return summaries, nil
}

func (s *Store) FindTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[txID]
	if !ok {
		return nil, storage.ErrTransactionNotFound
	}
	return &tx, nil
}

func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	for _, tx := range s.transactions {
		if tx.SenderID == accountID || tx.ReceiverID == accountID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

// Atomically runs fn under the store mutex. If fn fails, both maps are
// restored from the snapshot taken on entry, so no partial write survives.
func (s *Store) Atomically(ctx context.Context, fn func(uow storage.UnitOfWork) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accountsSnap := make(map[string]models.Account, len(s.accounts))
	for id, account := range s.accounts {
		accountsSnap[id] = account
	}
	transactionsSnap := make(map[string]models.Transaction, len(s.transactions))
	for id, tx := range s.transactions {
		transactionsSnap[id] = tx
	}

	if err := fn(&unitOfWork{store: s}); err != nil {
		s.accounts = accountsSnap
		s.transactions = transactionsSnap
		return err
	}
	return nil
}

// unitOfWork writes straight into the live maps; rollback is handled by the
// snapshot in Atomically. The caller already holds the store mutex.
type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) LockAccounts(ctx context.Context, ids []string) ([]models.Account, error) {
	accounts := make([]models.Account, 0, len(ids))
	for _, id := range ids {
		if account, ok := u.store.accounts[id]; ok {
			accounts = append(accounts, account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (u *unitOfWork) SaveAccount(ctx context.Context, account *models.Account) error {
	u.store.accounts[account.ID] = *account
	return nil
}

func (u *unitOfWork) SaveTransaction(ctx context.Context, tx *models.Transaction) error {
	u.store.transactions[tx.ID] = *tx
	return nil
}
