package bookingRepo

import (
	"context"
	"fmt"

	"lawflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Reserve checks and inserts atomically. precheck runs inside the transaction
// with a session-bound context, so the overlap and capacity reads it performs
// see a consistent snapshot. The partial unique index on
// (availability_id, start_time) backstops the no-overlap invariant even if
// two transactions race to commit.
func (r *MongoBookingRepo) Reserve(ctx context.Context, b *models.Booking, precheck func(txCtx context.Context) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if err := precheck(sc); err != nil {
			return err
		}
		if _, err := r.coll.InsertOne(sc, b); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicateSlot
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return fmt.Errorf("could not start transaction: %w", err)
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
