// Package ledger implements the reconciliation engine: the single place
// that translates a user-initiated financial action into the ordered set of
// balance mutations and transaction-log writes that keep goal balances,
// liability balances, the emergency fund, and the transaction history
// mutually consistent.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrushi1881/fintrack/internal/ledgererror"
	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
)

// Engine reconciles financial actions against the persistence collaborator.
//
// Failure semantics: validation happens before any persistence call, so a
// rejected action changes nothing. Once writes begin, every step is awaited
// sequentially and a failing step surfaces a PersistenceError carrying how
// many steps were already applied; the engine does not retry and does not
// roll back. Callers retry the whole action, never resume mid-sequence.
type Engine struct {
	store     Store
	confirmer Confirmer
	logger    logging.Logger
	newID     func() string
}

// NewEngine creates an engine over the given store. A nil confirmer
// declines all overpayments; a nil logger uses the process default.
func NewEngine(store Store, confirmer Confirmer, logger logging.Logger) *Engine {
	if confirmer == nil {
		confirmer = DeclineOverpayments
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		store:     store,
		confirmer: confirmer,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// Reconcile executes one action. It validates, clamps, and then applies the
// fixed step sequence for the action kind. See the Action variants for the
// per-kind side effects.
func (e *Engine) Reconcile(ctx context.Context, action Action) (Result, error) {
	if action == nil {
		return Result{}, &ledgererror.ValidationError{Action: "Reconcile", Reason: "action is nil"}
	}
	if err := action.validate(); err != nil {
		return Result{}, err
	}

	log := e.logger.WithField(logging.FieldAction, action.Kind())

	switch a := action.(type) {
	case AddTransaction:
		return e.reconcileAddTransaction(ctx, a, log)
	case GoalTransfer:
		return e.reconcileGoalTransfer(ctx, a, log)
	case LiabilityPayment:
		return e.reconcileLiabilityPayment(ctx, a, log)
	case AddLiability:
		return e.reconcileAddLiability(ctx, a, log)
	case EditTransaction:
		return e.reconcileEditTransaction(ctx, a, log)
	case DeleteTransaction:
		return e.reconcileDeleteTransaction(ctx, a, log)
	default:
		return Result{}, &ledgererror.ValidationError{
			Action: action.Kind(),
			Reason: "unknown action kind",
		}
	}
}

func (e *Engine) reconcileAddTransaction(ctx context.Context, a AddTransaction, log logging.Logger) (Result, error) {
	result := Result{Action: a.Kind()}

	// Resolve payment tags before any write so a dangling tag aborts cleanly.
	var taggedGoal *models.Goal
	var taggedLiability *models.Liability
	if a.GoalID != "" {
		goal, err := e.store.GetGoal(ctx, a.GoalID)
		if err != nil {
			return result, fmt.Errorf("resolving tagged goal: %w", err)
		}
		if err := sameCurrency(a.Kind(), a.Amount, goal.CurrentAmount); err != nil {
			return result, err
		}
		taggedGoal = &goal
	}
	if a.LiabilityID != "" {
		liability, err := e.store.GetLiability(ctx, a.LiabilityID)
		if err != nil {
			return result, fmt.Errorf("resolving tagged liability: %w", err)
		}
		if err := sameCurrency(a.Kind(), a.Amount, liability.RemainingAmount); err != nil {
			return result, err
		}
		taggedLiability = &liability
	}

	applied := 0

	created, err := e.store.CreateTransaction(ctx, models.Transaction{
		ID:                     e.newID(),
		Type:                   a.Type,
		Amount:                 a.Amount,
		Category:               a.Category,
		Description:            a.Description,
		Date:                   a.Date,
		ParentTransactionID:    a.ParentTransactionID,
		RecurringTransactionID: a.RecurringTransactionID,
	})
	if err != nil {
		return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "create transaction", AppliedSteps: applied, Err: err}
	}
	applied++
	result.Transactions = append(result.Transactions, created)

	if taggedGoal != nil {
		before := taggedGoal.CurrentAmount
		bumped, _ := before.Add(a.Amount)
		after := bumped.Clamp(decimal.Zero, taggedGoal.TargetAmount.Amount)
		if err := e.store.UpdateGoal(ctx, taggedGoal.ID, GoalPatch{CurrentAmount: &after}); err != nil {
			return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "update tagged goal", AppliedSteps: applied, Err: err}
		}
		applied++
		result.Mutations = append(result.Mutations, BalanceMutation{
			Entity: EntityGoal, ID: taggedGoal.ID, Before: before, After: after,
		})
		log.WithFields(
			logging.Field{Key: logging.FieldGoalID, Value: taggedGoal.ID},
			logging.Field{Key: logging.FieldAmount, Value: after.String()},
		).Debug("Bumped tagged goal balance")
	}

	if taggedLiability != nil {
		before := taggedLiability.RemainingAmount
		reduced, _ := before.Sub(a.Amount)
		after := reduced.Clamp(decimal.Zero, taggedLiability.TotalAmount.Amount)
		if err := e.store.UpdateLiability(ctx, taggedLiability.ID, LiabilityPatch{RemainingAmount: &after}); err != nil {
			return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "update tagged liability", AppliedSteps: applied, Err: err}
		}
		applied++
		result.Mutations = append(result.Mutations, BalanceMutation{
			Entity: EntityLiability, ID: taggedLiability.ID, Before: before, After: after,
		})
		log.WithFields(
			logging.Field{Key: logging.FieldLiabilityID, Value: taggedLiability.ID},
			logging.Field{Key: logging.FieldAmount, Value: after.String()},
		).Debug("Reduced tagged liability balance")
	}

	log.WithField(logging.FieldTransactionID, created.ID).Info("Transaction reconciled")
	return result, nil
}

func (e *Engine) reconcileGoalTransfer(ctx context.Context, a GoalTransfer, log logging.Logger) (Result, error) {
	result := Result{Action: a.Kind()}

	goal, err := e.store.GetGoal(ctx, a.GoalID)
	if err != nil {
		return result, fmt.Errorf("resolving goal: %w", err)
	}
	if err := sameCurrency(a.Kind(), a.Amount, goal.CurrentAmount); err != nil {
		return result, err
	}

	if a.Source == SourceEmergencyFund {
		return e.reconcileEmergencyTransfer(ctx, a, goal, log)
	}
	return e.reconcileManualTransfer(ctx, a, goal, log)
}

// reconcileManualTransfer handles goal transfers funded (or paid out)
// outside the tracked balances. The goal balance is clamped to
// [0, target]; the paired cash transaction, when one is recorded, carries
// the FULL requested amount even when the balance change was clamped to
// less. That asymmetry is long-standing observable behavior and is kept.
func (e *Engine) reconcileManualTransfer(ctx context.Context, a GoalTransfer, goal models.Goal, log logging.Logger) (Result, error) {
	result := Result{Action: a.Kind()}

	before := goal.CurrentAmount
	var moved models.Money
	if a.Direction == DirectionAdd {
		moved, _ = before.Add(a.Amount)
	} else {
		moved, _ = before.Sub(a.Amount)
	}
	after := moved.Clamp(decimal.Zero, goal.TargetAmount.Amount)

	applied := 0
	if err := e.store.UpdateGoal(ctx, goal.ID, GoalPatch{CurrentAmount: &after}); err != nil {
		return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "update goal", AppliedSteps: applied, Err: err}
	}
	applied++
	result.Mutations = append(result.Mutations, BalanceMutation{
		Entity: EntityGoal, ID: goal.ID, Before: before, After: after,
	})

	// Tracking-only path: an add that does not deduct from the cash balance
	// records no transaction at all.
	if a.Direction == DirectionAdd && !a.DeductFromBalance {
		log.WithField(logging.FieldGoalID, goal.ID).Info("Tracking-only goal addition reconciled")
		return result, nil
	}

	txType := models.TransactionTypeExpense
	category := models.CategorySavings
	description := fmt.Sprintf("Added to goal %q (balance now %s)", goal.Title, after)
	if a.Direction == DirectionWithdraw {
		txType = models.TransactionTypeIncome
		category = models.CategoryGoalWithdrawal
		description = fmt.Sprintf("Withdrew from goal %q (balance now %s)", goal.Title, after)
	}

	created, err := e.store.CreateTransaction(ctx, models.Transaction{
		ID:          e.newID(),
		Type:        txType,
		Amount:      a.Amount,
		Category:    category,
		Description: description,
		Date:        a.Date,
	})
	if err != nil {
		return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "create transaction", AppliedSteps: applied, Err: err}
	}
	result.Transactions = append(result.Transactions, created)

	log.WithFields(
		logging.Field{Key: logging.FieldGoalID, Value: goal.ID},
		logging.Field{Key: logging.FieldTransactionID, Value: created.ID},
	).Info("Goal transfer reconciled")
	return result, nil
}

// reconcileEmergencyTransfer moves money between a goal and the emergency
// fund. The applied delta is limited by the source's available balance and
// the destination's remaining capacity so that both goals keep their
// [0, target] invariant and the transfer nets to zero across the two
// balances. Exactly one "Internal Transfer" transaction records the move.
func (e *Engine) reconcileEmergencyTransfer(ctx context.Context, a GoalTransfer, goal models.Goal, log logging.Logger) (Result, error) {
	result := Result{Action: a.Kind()}

	fund, err := e.store.FindGoalByCategory(ctx, models.CategoryEmergency)
	if err != nil {
		return result, fmt.Errorf("resolving emergency fund: %w", err)
	}
	if fund.ID == goal.ID {
		return result, &ledgererror.ValidationError{
			Action: a.Kind(), Field: "goalId",
			Reason: "cannot transfer between the emergency fund and itself",
		}
	}
	if err := sameCurrency(a.Kind(), a.Amount, fund.CurrentAmount); err != nil {
		return result, err
	}

	var effective decimal.Decimal
	if a.Direction == DirectionAdd {
		// emergency fund -> goal
		effective = decimal.Min(a.Amount.Amount, fund.CurrentAmount.Amount, goal.Remaining().Amount)
	} else {
		// goal -> emergency fund
		effective = decimal.Min(a.Amount.Amount, goal.CurrentAmount.Amount, fund.Remaining().Amount)
	}
	if !effective.IsPositive() {
		return result, &ledgererror.ValidationError{
			Action: a.Kind(), Field: "amount",
			Reason: "nothing to transfer: source balance or destination capacity is exhausted",
		}
	}
	delta := models.NewMoney(effective, a.Amount.Currency)

	goalBefore := goal.CurrentAmount
	fundBefore := fund.CurrentAmount
	var goalAfter, fundAfter models.Money
	if a.Direction == DirectionAdd {
		goalAfter, _ = goalBefore.Add(delta)
		fundAfter, _ = fundBefore.Sub(delta)
	} else {
		goalAfter, _ = goalBefore.Sub(delta)
		fundAfter, _ = fundBefore.Add(delta)
	}

	applied := 0
	if err := e.store.UpdateGoal(ctx, goal.ID, GoalPatch{CurrentAmount: &goalAfter}); err != nil {
		return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "update goal", AppliedSteps: applied, Err: err}
	}
	applied++
	result.Mutations = append(result.Mutations, BalanceMutation{
		Entity: EntityGoal, ID: goal.ID, Before: goalBefore, After: goalAfter,
	})

	if err := e.store.UpdateGoal(ctx, fund.ID, GoalPatch{CurrentAmount: &fundAfter}); err != nil {
		return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "update emergency fund", AppliedSteps: applied, Err: err}
	}
	applied++
	result.Mutations = append(result.Mutations, BalanceMutation{
		Entity: EntityGoal, ID: fund.ID, Before: fundBefore, After: fundAfter,
	})

	txType := models.TransactionTypeExpense
	description := fmt.Sprintf("Transfer from emergency fund to goal %q (balance now %s)", goal.Title, goalAfter)
	if a.Direction == DirectionWithdraw {
		txType = models.TransactionTypeIncome
		description = fmt.Sprintf("Transfer from goal %q to emergency fund (fund now %s)", goal.Title, fundAfter)
	}
	created, err := e.store.CreateTransaction(ctx, models.Transaction{
		ID:          e.newID(),
		Type:        txType,
		Amount:      delta,
		Category:    models.CategoryInternalTransfer,
		Description: description,
		Date:        a.Date,
	})
	if err != nil {
		return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "create transfer transaction", AppliedSteps: applied, Err: err}
	}
	result.Transactions = append(result.Transactions, created)

	log.WithFields(
		logging.Field{Key: logging.FieldGoalID, Value: goal.ID},
		logging.Field{Key: logging.FieldAmount, Value: delta.String()},
	).Info("Emergency fund transfer reconciled")
	return result, nil
}

func (e *Engine) reconcileLiabilityPayment(ctx context.Context, a LiabilityPayment, log logging.Logger) (Result, error) {
	result := Result{Action: a.Kind()}

	liability, err := e.store.GetLiability(ctx, a.LiabilityID)
	if err != nil {
		return result, fmt.Errorf("resolving liability: %w", err)
	}
	if err := sameCurrency(a.Kind(), a.Amount, liability.RemainingAmount); err != nil {
		return result, err
	}
	if liability.IsPaidOff() {
		return result, &ledgererror.ValidationError{
			Action: a.Kind(), Field: "liabilityId", Reason: "liability is already paid off",
		}
	}

	// Overpayment gate: all-or-nothing. A declined confirmation aborts the
	// whole action before anything is persisted.
	actual := a.Amount
	if a.Amount.Amount.GreaterThan(liability.RemainingAmount.Amount) {
		if !e.confirmer.ConfirmOverpayment(liability, a.Amount) {
			return result, &ledgererror.OverpaymentDeclinedError{
				LiabilityID: liability.ID,
				Requested:   a.Amount.String(),
				Remaining:   liability.RemainingAmount.String(),
			}
		}
		actual = liability.RemainingAmount
	}

	before := liability.RemainingAmount
	reduced, _ := before.Sub(actual)
	after := reduced.Clamp(decimal.Zero, liability.TotalAmount.Amount)

	applied := 0
	if err := e.store.UpdateLiability(ctx, liability.ID, LiabilityPatch{RemainingAmount: &after}); err != nil {
		return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "update liability", AppliedSteps: applied, Err: err}
	}
	applied++
	result.Mutations = append(result.Mutations, BalanceMutation{
		Entity: EntityLiability, ID: liability.ID, Before: before, After: after,
	})

	if a.CreateTransaction {
		created, err := e.store.CreateTransaction(ctx, models.Transaction{
			ID:          e.newID(),
			Type:        models.TransactionTypeExpense,
			Amount:      actual,
			Category:    models.CategoryDebtPayment,
			Description: fmt.Sprintf("Payment toward %q (%s remaining)", liability.Name, after),
			Date:        a.Date,
		})
		if err != nil {
			return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "create payment transaction", AppliedSteps: applied, Err: err}
		}
		result.Transactions = append(result.Transactions, created)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldLiabilityID, Value: liability.ID},
		logging.Field{Key: logging.FieldAmount, Value: actual.String()},
	).Info("Liability payment reconciled")
	return result, nil
}

func (e *Engine) reconcileAddLiability(ctx context.Context, a AddLiability, log logging.Logger) (Result, error) {
	result := Result{Action: a.Kind()}

	liability := a.Liability
	if liability.ID == "" {
		liability.ID = e.newID()
	}
	if liability.RemainingAmount.Currency == "" && liability.RemainingAmount.Amount.IsZero() {
		liability.RemainingAmount = liability.TotalAmount
	}

	// A linked purchase must reference an existing transaction; no new
	// transaction is ever created for it.
	if liability.LinkedPurchaseID != "" {
		if _, err := e.store.GetTransaction(ctx, liability.LinkedPurchaseID); err != nil {
			return result, fmt.Errorf("resolving linked purchase: %w", err)
		}
	}

	applied := 0
	created, err := e.store.CreateLiability(ctx, liability)
	if err != nil {
		return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "create liability", AppliedSteps: applied, Err: err}
	}
	applied++
	result.Liability = &created

	// Purchase liabilities never record income: the cash already left as the
	// original purchase expense. AddAsIncome is ignored for them.
	if !created.IsPurchase() && a.AddAsIncome {
		tx, err := e.store.CreateTransaction(ctx, models.Transaction{
			ID:          e.newID(),
			Type:        models.TransactionTypeIncome,
			Amount:      created.TotalAmount,
			Category:    models.CategoryLoan,
			Description: fmt.Sprintf("Borrowed %s as %q", created.TotalAmount, created.Name),
			Date:        a.Date,
		})
		if err != nil {
			return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "create loan income transaction", AppliedSteps: applied, Err: err}
		}
		result.Transactions = append(result.Transactions, tx)
	}

	log.WithField(logging.FieldLiabilityID, created.ID).Info("Liability reconciled")
	return result, nil
}

// reconcileEditTransaction persists the edit only. Side effects a previous
// reconciliation applied for this transaction (goal bumps, liability
// reductions) are deliberately left untouched.
func (e *Engine) reconcileEditTransaction(ctx context.Context, a EditTransaction, log logging.Logger) (Result, error) {
	result := Result{Action: a.Kind()}

	existing, err := e.store.GetTransaction(ctx, a.ID)
	if err != nil {
		return result, fmt.Errorf("resolving transaction: %w", err)
	}

	if err := e.store.UpdateTransaction(ctx, existing.ID, a.Patch); err != nil {
		return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "update transaction", AppliedSteps: 0, Err: err}
	}

	log.WithField(logging.FieldTransactionID, existing.ID).Info("Transaction edit reconciled")
	return result, nil
}

// reconcileDeleteTransaction removes the record only; paired balance
// mutations are not reversed.
func (e *Engine) reconcileDeleteTransaction(ctx context.Context, a DeleteTransaction, log logging.Logger) (Result, error) {
	result := Result{Action: a.Kind()}

	existing, err := e.store.GetTransaction(ctx, a.ID)
	if err != nil {
		return result, fmt.Errorf("resolving transaction: %w", err)
	}

	if err := e.store.DeleteTransaction(ctx, existing.ID); err != nil {
		return result, &ledgererror.PersistenceError{Action: a.Kind(), Step: "delete transaction", AppliedSteps: 0, Err: err}
	}

	log.WithField(logging.FieldTransactionID, existing.ID).Info("Transaction deletion reconciled")
	return result, nil
}

// sameCurrency rejects an action whose amount currency differs from the
// entity balance it targets.
func sameCurrency(action string, amount, balance models.Money) error {
	if amount.Currency != balance.Currency {
		return &ledgererror.ValidationError{
			Action: action,
			Field:  "amount",
			Reason: fmt.Sprintf("currency %s does not match balance currency %s", amount.Currency, balance.Currency),
		}
	}
	return nil
}
