package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/log"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/service/query"
)

type paymentRegistryRepo struct {
	q query.Mongo
}

// NewPaymentRegistryRepo builds a mongo backed fungible ledger in the
// smallest unit of the stable payment token. Debits are guarded by an
// amount-gte selector so a balance never goes negative.
func NewPaymentRegistryRepo(q query.Mongo) domain.PaymentRegistry {
	return &paymentRegistryRepo{q: q}
}

func (r *paymentRegistryRepo) BalanceOf(c bCtx.Ctx, account domain.Address) (int64, error) {
	balance := &domain.PaymentBalance{}
	qry := bson.M{"account": account.ToLower()}
	err := r.q.FindOne(c, domain.TablePaymentBalances, qry, balance)
	if err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return 0, err
	}
	return balance.Amount, nil
}

func (r *paymentRegistryRepo) Deposit(c bCtx.Ctx, account domain.Address, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidPrice
	}
	return r.credit(c, account, amount)
}

func (r *paymentRegistryRepo) Transfer(c bCtx.Ctx, from, to domain.Address, amount int64) error {
	if amount < 0 {
		return domain.ErrInvalidPrice
	}
	if amount == 0 || from.Equals(to) {
		return nil
	}

	if err := r.debit(c, from, amount); err != nil {
		return err
	}
	return r.credit(c, to, amount)
}

func (r *paymentRegistryRepo) TransferFrom(c bCtx.Ctx, spender, payer, payee domain.Address, amount int64) error {
	if amount < 0 {
		return domain.ErrInvalidPrice
	}
	if amount == 0 {
		return nil
	}

	// consume allowance first, callers run inside one mongo transaction so
	// the check and the decrement move together
	remaining, err := r.Allowance(c, payer, spender)
	if err != nil {
		return err
	}
	if remaining < amount {
		return domain.ErrNotAuthorizedCaller
	}

	selector := bson.M{
		"owner":   payer.ToLower(),
		"spender": spender.ToLower(),
	}
	allowance := &domain.PaymentAllowance{}
	if err := r.q.Increment(c, domain.TablePaymentAllowances, selector, allowance, "amount", -amount); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"payer":   payer,
			"spender": spender,
		}).Error("consume allowance failed")
		return err
	}

	return r.Transfer(c, payer, payee, amount)
}

func (r *paymentRegistryRepo) Approve(c bCtx.Ctx, owner, spender domain.Address, amount int64) error {
	if amount < 0 {
		return domain.ErrInvalidPrice
	}
	selector := bson.M{
		"owner":   owner.ToLower(),
		"spender": spender.ToLower(),
	}
	record := &domain.PaymentAllowance{
		Owner:   owner.ToLower(),
		Spender: spender.ToLower(),
		Amount:  amount,
	}
	if err := r.q.Upsert(c, domain.TablePaymentAllowances, selector, record); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *paymentRegistryRepo) Allowance(c bCtx.Ctx, owner, spender domain.Address) (int64, error) {
	allowance := &domain.PaymentAllowance{}
	qry := bson.M{
		"owner":   owner.ToLower(),
		"spender": spender.ToLower(),
	}
	err := r.q.FindOne(c, domain.TablePaymentAllowances, qry, allowance)
	if err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return 0, err
	}
	return allowance.Amount, nil
}

func (r *paymentRegistryRepo) debit(c bCtx.Ctx, account domain.Address, amount int64) error {
	balance, err := r.BalanceOf(c, account)
	if err != nil {
		return err
	}
	if balance < amount {
		return domain.ErrInsufficientFunds
	}

	selector := bson.M{"account": account.ToLower()}
	updated := &domain.PaymentBalance{}
	if err := r.q.Increment(c, domain.TablePaymentBalances, selector, updated, "amount", -amount); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
			"amount":  amount,
		}).Error("debit failed")
		return err
	}
	return nil
}

func (r *paymentRegistryRepo) credit(c bCtx.Ctx, account domain.Address, amount int64) error {
	selector := bson.M{"account": account.ToLower()}
	balance := &domain.PaymentBalance{}
	if err := r.q.Increment(c, domain.TablePaymentBalances, selector, balance, "amount", amount); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
			"amount":  amount,
		}).Error("credit failed")
		return err
	}
	return nil
}
