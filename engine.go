package investmind

import "time"

// Invest executes an investment of amount into option on behalf of the
// user. Preconditions are checked in order, first violation wins:
//
//  1. amount must lie within [option.MinInvestment, min(option.MaxInvestment, balance)].
//  2. amount must not exceed the current balance. This is implied by the
//     bound above but checked independently as a guard.
//
// On success the record is appended to the user's history and the balance
// is debited by exactly amount. Both effects happen or neither does: the
// record is fully built before any field of the user is touched, so a
// failed call leaves the user untouched.
//
// The return value is computed once here and never recomputed. now is the
// caller's clock, stamped into the record using TimestampFormat.
func (u *User) Invest(option InvestmentOption, amount Money, notes string, now time.Time) (Investment, error) {
	ceiling := option.MaxInvestment.Min(u.Balance)
	if amount.LessThan(option.MinInvestment) || amount.GreaterThan(ceiling) {
		return Investment{}, validationErrorf("amount", "out of bounds: must be between %s and %s", option.MinInvestment, ceiling)
	}
	if amount.GreaterThan(u.Balance) {
		return Investment{}, validationErrorf("amount", "insufficient funds: balance is %s", u.Balance)
	}

	record := Investment{
		User:        u.Username,
		Option:      option,
		Amount:      amount,
		ReturnValue: option.Return(amount),
		Date:        now.Format(TimestampFormat),
		Notes:       notes,
	}

	u.Investments = append(u.Investments, record)
	u.Balance = u.Balance.Sub(amount)
	return record, nil
}
