package ledger

import (
	"math/rand"
	"testing"

	"hostel-ledger-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func depositTx(tenantID string, typ domain.DepositTransactionType, amount domain.Money, reason string) domain.DepositTransaction {
	return domain.DepositTransaction{
		TenantID: tenantID,
		Date:     domain.NewDate(2024, 6, 10),
		Amount:   amount,
		Type:     typ,
		Reason:   reason,
	}
}

func TestCurrentBalance(t *testing.T) {
	t.Run("Damage and overcharge correction", func(t *testing.T) {
		txs := []domain.DepositTransaction{
			depositTx("t1", domain.DepositDeduction, 1200, "damage"),
			depositTx("t1", domain.DepositRefund, 300, "overcharge correction"),
		}
		assert.Equal(t, domain.Money(4100), CurrentBalance(5000, txs))
	})

	t.Run("No transactions keeps the initial deposit", func(t *testing.T) {
		assert.Equal(t, domain.Money(5000), CurrentBalance(5000, nil))
		assert.Equal(t, domain.Money(0), CurrentBalance(0, []domain.DepositTransaction{}))
	})

	t.Run("Balance may go negative", func(t *testing.T) {
		txs := []domain.DepositTransaction{
			depositTx("t1", domain.DepositDeduction, 3000, "painting"),
			depositTx("t1", domain.DepositDeduction, 2500, "broken window"),
		}
		assert.Equal(t, domain.Money(-500), CurrentBalance(5000, txs))
	})
}

func TestCurrentBalance_OrderIndependent(t *testing.T) {
	txs := []domain.DepositTransaction{
		depositTx("t1", domain.DepositDeduction, 1200, "damage"),
		depositTx("t1", domain.DepositRefund, 300, "correction"),
		depositTx("t1", domain.DepositDeduction, 75, "key"),
		depositTx("t1", domain.DepositRefund, 40, "key found"),
		depositTx("t1", domain.DepositDeduction, 900, "cleaning"),
	}
	var deducted, refunded domain.Money
	for _, tx := range txs {
		if tx.Type == domain.DepositDeduction {
			deducted += tx.Amount
		} else {
			refunded += tx.Amount
		}
	}
	want := domain.Money(8000) - deducted + refunded

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := append([]domain.DepositTransaction(nil), txs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, CurrentBalance(8000, shuffled))
	}
}

func TestSummarize(t *testing.T) {
	txs := []domain.DepositTransaction{
		depositTx("t1", domain.DepositDeduction, 1200, "damage"),
		depositTx("t1", domain.DepositRefund, 300, "overcharge correction"),
		depositTx("t1", domain.DepositDeduction, 100, "late key"),
	}
	s := Summarize(5000, txs)
	assert.Equal(t, domain.DepositSummary{
		Initial:       5000,
		TotalDeducted: 1300,
		TotalRefunded: 300,
		Balance:       4000,
	}, s)
}

func TestGroupByTenant(t *testing.T) {
	txs := []domain.DepositTransaction{
		depositTx("t1", domain.DepositDeduction, 100, "a"),
		depositTx("t2", domain.DepositDeduction, 200, "b"),
		depositTx("t1", domain.DepositRefund, 50, "c"),
	}
	byTenant := GroupByTenant(txs)
	assert.Len(t, byTenant, 2)
	assert.Len(t, byTenant["t1"], 2)
	assert.Equal(t, "a", byTenant["t1"][0].Reason)
	assert.Equal(t, domain.Money(950), CurrentBalance(1000, byTenant["t1"]))
	assert.Empty(t, byTenant["t3"])
}
